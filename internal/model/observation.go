package model

import "math"

// YieldRow is a single secondary-market trade of a government bond (SUN),
// as recorded in the PLTE trade database.
type YieldRow struct {
	// Date is the trade date exactly as stored in the database.
	Date string

	// Security is the series identifier (e.g. "FR0100").
	Security string

	// Yield is the traded yield in percent.
	Yield float64

	// Price is the clean price in percent of par.
	Price float64

	// Coupon is the coupon rate in percent.
	Coupon float64

	// Volume is the traded nominal amount in rupiah.
	Volume float64

	// Value is the settlement value in rupiah.
	Value float64

	// Maturity is the maturity date of the series, as stored.
	Maturity string
}

// OwnershipRow is one category line of the tradable SBN ownership table.
// Amounts are in rupiah.
type OwnershipRow struct {
	Date               string
	Category           string
	DomesticIndividual float64
	DomesticCompany    float64
	NonResident        float64
}

// TransactionGroup is the aggregate of all settled transactions of one type
// on one settlement date.
type TransactionGroup struct {
	SettleDate string
	Type       string
	Series     string
	Count      int64
	Volume     float64
	Value      float64
	AvgYield   float64
}

// FXQuote holds the rupiah exchange rates for one date.
type FXQuote struct {
	Date string
	USD  float64
	EUR  float64
	JPY  float64
	SGD  float64
}

// TenYearYield holds the 10-year benchmark yields (percent) of the
// Indonesian USD global bond and the US Treasury for one date.
type TenYearYield struct {
	Date      string
	Indonesia float64
	USA       float64
}

// CDSQuote is the Indonesia sovereign credit default swap spread in bps
// for a single tenor.
type CDSQuote struct {
	Date  string
	Tenor string
	Price float64
}

// NDFQuote holds the USD/IDR non-deliverable forward quotes for one date.
type NDFQuote struct {
	Date     string
	OneMonth float64
	SixMonth float64
	OneYear  float64
}

// Market keys of the equity index table.
const (
	MarketIndonesia = "Indonesia"
	MarketUSA       = "USA"
	MarketJapan     = "Japan"
	MarketHongkong  = "Hongkong"
	MarketShanghai  = "Shanghai"
	MarketGerman    = "German"
)

// StockIndexQuote holds closing levels of the tracked equity indices.
type StockIndexQuote struct {
	Date      string
	Indonesia float64
	USA       float64
	Japan     float64
	Hongkong  float64
	Shanghai  float64
	German    float64
}

// Index returns the level for the given market key.
// Unknown keys report false.
func (q StockIndexQuote) Index(market string) (float64, bool) {
	switch market {
	case MarketIndonesia:
		return q.Indonesia, true
	case MarketUSA:
		return q.USA, true
	case MarketJapan:
		return q.Japan, true
	case MarketHongkong:
		return q.Hongkong, true
	case MarketShanghai:
		return q.Shanghai, true
	case MarketGerman:
		return q.German, true
	default:
		return 0, false
	}
}

// CommodityQuote holds commodity prices in US dollars for one date.
type CommodityQuote struct {
	Date    string
	ICP     float64
	WTI     float64
	PalmOil float64
}

// IsValue reports whether v is a usable number.
// NULL columns are read as NaN and must never reach a computation.
func IsValue(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
