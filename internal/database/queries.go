package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/nao1215/marketupdate/internal/model"
)

const yieldsQuery = `
SELECT
	CAST(tanggal_transaksi AS TEXT),
	Securities_Id,
	Yield,
	Price,
	Coupon_Rate,
	Volume,
	Value,
	CAST(Mature_Date AS TEXT)
FROM "DB_PLTE"
WHERE tanggal_transaksi IN (
	SELECT DISTINCT tanggal_transaksi FROM "DB_PLTE"
	WHERE tanggal_transaksi IS NOT NULL
	ORDER BY tanggal_transaksi DESC LIMIT 2
)
ORDER BY tanggal_transaksi DESC, Securities_Id`

// Yields returns every secondary market trade of the two most recent
// trade dates, most recent first.
func (s *Sources) Yields(ctx context.Context) model.Dataset[model.YieldRow] {
	return fetch(ctx, s, SourceYields, s.plte, scanYield, yieldsQuery)
}

func scanYield(rows *sql.Rows) (model.YieldRow, error) {
	var (
		date                                string
		security, maturity                  sql.NullString
		yield, price, coupon, volume, value sql.NullFloat64
	)
	if err := rows.Scan(&date, &security, &yield, &price, &coupon, &volume, &value, &maturity); err != nil {
		return model.YieldRow{}, err
	}
	return model.YieldRow{
		Date:     date,
		Security: security.String,
		Yield:    floatOrNaN(yield),
		Price:    floatOrNaN(price),
		Coupon:   floatOrNaN(coupon),
		Volume:   floatOrNaN(volume),
		Value:    floatOrNaN(value),
		Maturity: maturity.String,
	}, nil
}

const ownershipQuery = `
SELECT
	CAST(tanggal AS TEXT),
	KATEGORI_SBN,
	Total_CN,
	Total_CR,
	Total_OR
FROM "Kepemilikan_Investor_Tradable"
WHERE tanggal IN (
	SELECT DISTINCT tanggal FROM "Kepemilikan_Investor_Tradable"
	WHERE tanggal IS NOT NULL
	ORDER BY tanggal DESC LIMIT 2
)
ORDER BY tanggal DESC, KATEGORI_SBN`

// Ownership returns the ownership rows of the two most recent dates.
func (s *Sources) Ownership(ctx context.Context) model.Dataset[model.OwnershipRow] {
	return fetch(ctx, s, SourceOwnership, s.ownership, scanOwnership, ownershipQuery)
}

func scanOwnership(rows *sql.Rows) (model.OwnershipRow, error) {
	var (
		date                             string
		category                         sql.NullString
		individual, company, nonResident sql.NullFloat64
	)
	if err := rows.Scan(&date, &category, &individual, &company, &nonResident); err != nil {
		return model.OwnershipRow{}, err
	}
	return model.OwnershipRow{
		Date:               date,
		Category:           category.String,
		DomesticIndividual: floatOrNaN(individual),
		DomesticCompany:    floatOrNaN(company),
		NonResident:        floatOrNaN(nonResident),
	}, nil
}

const transactionsQuery = `
SELECT
	CAST(TANGGAL_SETELMEN AS TEXT),
	JENIS_TRANSAKSI,
	SERI,
	COUNT(*),
	SUM(NOMINAL),
	SUM(NILAI_TRANSAKSI),
	AVG(YIELD)
FROM "Transaksi_Harian"
WHERE TANGGAL_SETELMEN IN (
	SELECT DISTINCT TANGGAL_SETELMEN FROM "Transaksi_Harian"
	WHERE TANGGAL_SETELMEN IS NOT NULL
	ORDER BY TANGGAL_SETELMEN DESC LIMIT 2
)
GROUP BY TANGGAL_SETELMEN, JENIS_TRANSAKSI
ORDER BY TANGGAL_SETELMEN DESC, JENIS_TRANSAKSI`

// Transactions returns the settled transactions of the two most recent
// settlement dates, aggregated per transaction type.
func (s *Sources) Transactions(ctx context.Context) model.Dataset[model.TransactionGroup] {
	return fetch(ctx, s, SourceTransactions, s.transactions, scanTransaction, transactionsQuery)
}

func scanTransaction(rows *sql.Rows) (model.TransactionGroup, error) {
	var (
		date                    string
		kind, series            sql.NullString
		count                   int64
		volume, value, avgYield sql.NullFloat64
	)
	if err := rows.Scan(&date, &kind, &series, &count, &volume, &value, &avgYield); err != nil {
		return model.TransactionGroup{}, err
	}
	return model.TransactionGroup{
		SettleDate: date,
		Type:       kind.String,
		Series:     series.String,
		Count:      count,
		Volume:     floatOrNaN(volume),
		Value:      floatOrNaN(value),
		AvgYield:   floatOrNaN(avgYield),
	}, nil
}

const fxQuery = `
SELECT CAST(tanggal AS TEXT), USD, EUR, JPY, SGD
FROM "Kurs_IDR"
WHERE tanggal IS NOT NULL
ORDER BY tanggal DESC LIMIT 2`

// FX returns the two most recent rupiah exchange rates.
func (s *Sources) FX(ctx context.Context) model.Dataset[model.FXQuote] {
	return fetch(ctx, s, SourceFX, s.market, func(rows *sql.Rows) (model.FXQuote, error) {
		var (
			date               string
			usd, eur, jpy, sgd sql.NullFloat64
		)
		if err := rows.Scan(&date, &usd, &eur, &jpy, &sgd); err != nil {
			return model.FXQuote{}, err
		}
		return model.FXQuote{
			Date: date,
			USD:  floatOrNaN(usd),
			EUR:  floatOrNaN(eur),
			JPY:  floatOrNaN(jpy),
			SGD:  floatOrNaN(sgd),
		}, nil
	}, fxQuery)
}

const tenYearQuery = `
SELECT CAST(tanggal AS TEXT), Indonesia, USA
FROM "10Y_General"
WHERE tanggal IS NOT NULL
ORDER BY tanggal DESC LIMIT 2`

// TenYear returns the two most recent 10Y yields of the Indonesian USD
// global bond and the US Treasury.
func (s *Sources) TenYear(ctx context.Context) model.Dataset[model.TenYearYield] {
	return fetch(ctx, s, SourceTenYear, s.market, func(rows *sql.Rows) (model.TenYearYield, error) {
		var (
			date           string
			indonesia, usa sql.NullFloat64
		)
		if err := rows.Scan(&date, &indonesia, &usa); err != nil {
			return model.TenYearYield{}, err
		}
		return model.TenYearYield{
			Date:      date,
			Indonesia: floatOrNaN(indonesia),
			USA:       floatOrNaN(usa),
		}, nil
	}, tenYearQuery)
}

// cdsQuery selects the configured tenors on the latest date of the table.
const cdsQuery = `
SELECT DISTINCT CAST(tanggal AS TEXT), TENOR, PRICE
FROM "CDS_Indo"
WHERE TENOR IN (%s)
AND tanggal IN (
	SELECT DISTINCT tanggal FROM "CDS_Indo"
	WHERE tanggal IS NOT NULL
	ORDER BY tanggal DESC LIMIT 1
)
ORDER BY tanggal DESC, TENOR`

// CDS returns the CDS spreads of the configured tenors on the latest date.
func (s *Sources) CDS(ctx context.Context) model.Dataset[model.CDSQuote] {
	if len(s.cdsTenors) == 0 {
		return model.Rows(SourceCDS, []model.CDSQuote{})
	}

	args := make([]any, len(s.cdsTenors))
	for i, t := range s.cdsTenors {
		args[i] = t
	}
	q := fmt.Sprintf(cdsQuery, placeholders(len(args)))

	return fetch(ctx, s, SourceCDS, s.market, func(rows *sql.Rows) (model.CDSQuote, error) {
		var (
			date  string
			tenor sql.NullString
			price sql.NullFloat64
		)
		if err := rows.Scan(&date, &tenor, &price); err != nil {
			return model.CDSQuote{}, err
		}
		return model.CDSQuote{Date: date, Tenor: tenor.String, Price: floatOrNaN(price)}, nil
	}, q, args...)
}

const ndfQuery = `
SELECT CAST(tanggal AS TEXT), IHN_1M_Curncy, IHN_6M_Curncy, IHN_12M_Curncy
FROM "NDF_Update"
WHERE tanggal IS NOT NULL
ORDER BY tanggal DESC LIMIT 2`

// NDF returns the two most recent USD/IDR non-deliverable forward quotes.
func (s *Sources) NDF(ctx context.Context) model.Dataset[model.NDFQuote] {
	return fetch(ctx, s, SourceNDF, s.market, func(rows *sql.Rows) (model.NDFQuote, error) {
		var (
			date                        string
			oneMonth, sixMonth, oneYear sql.NullFloat64
		)
		if err := rows.Scan(&date, &oneMonth, &sixMonth, &oneYear); err != nil {
			return model.NDFQuote{}, err
		}
		return model.NDFQuote{
			Date:     date,
			OneMonth: floatOrNaN(oneMonth),
			SixMonth: floatOrNaN(sixMonth),
			OneYear:  floatOrNaN(oneYear),
		}, nil
	}, ndfQuery)
}

const stockIndicesQuery = `
SELECT CAST(tanggal AS TEXT), Indonesia, USA, Japan, Hongkong, Shanghai, German
FROM "Saham_Peers"
WHERE tanggal IS NOT NULL
ORDER BY tanggal DESC LIMIT 2`

// StockIndices returns the two most recent equity index levels.
func (s *Sources) StockIndices(ctx context.Context) model.Dataset[model.StockIndexQuote] {
	return fetch(ctx, s, SourceStockIndices, s.market, func(rows *sql.Rows) (model.StockIndexQuote, error) {
		var (
			date                                           string
			indonesia, usa, japan, hongkong, shanghai, ger sql.NullFloat64
		)
		if err := rows.Scan(&date, &indonesia, &usa, &japan, &hongkong, &shanghai, &ger); err != nil {
			return model.StockIndexQuote{}, err
		}
		return model.StockIndexQuote{
			Date:      date,
			Indonesia: floatOrNaN(indonesia),
			USA:       floatOrNaN(usa),
			Japan:     floatOrNaN(japan),
			Hongkong:  floatOrNaN(hongkong),
			Shanghai:  floatOrNaN(shanghai),
			German:    floatOrNaN(ger),
		}, nil
	}, stockIndicesQuery)
}

const commoditiesQuery = `
SELECT CAST(tanggal AS TEXT), ICP, WTI, PALM_OIL
FROM "Commodity_DB"
WHERE tanggal IS NOT NULL
ORDER BY tanggal DESC LIMIT 2`

// Commodities returns the two most recent commodity prices.
func (s *Sources) Commodities(ctx context.Context) model.Dataset[model.CommodityQuote] {
	return fetch(ctx, s, SourceCommodities, s.market, func(rows *sql.Rows) (model.CommodityQuote, error) {
		var (
			date              string
			icp, wti, palmOil sql.NullFloat64
		)
		if err := rows.Scan(&date, &icp, &wti, &palmOil); err != nil {
			return model.CommodityQuote{}, err
		}
		return model.CommodityQuote{
			Date:    date,
			ICP:     floatOrNaN(icp),
			WTI:     floatOrNaN(wti),
			PalmOil: floatOrNaN(palmOil),
		}, nil
	}, commoditiesQuery)
}

// freshnessColumns lists the date column of every table, per database.
var freshnessColumns = []struct {
	source string
	table  string
	column string
}{
	{SourceYields, "DB_PLTE", "tanggal_transaksi"},
	{SourceOwnership, "Kepemilikan_Investor_Tradable", "tanggal"},
	{SourceTransactions, "Transaksi_Harian", "TANGGAL_SETELMEN"},
	{SourceFX, "Kurs_IDR", "tanggal"},
	{SourceTenYear, "10Y_General", "tanggal"},
	{SourceCDS, "CDS_Indo", "tanggal"},
	{SourceNDF, "NDF_Update", "tanggal"},
	{SourceStockIndices, "Saham_Peers", "tanggal"},
	{SourceCommodities, "Commodity_DB", "tanggal"},
}

// LatestDates returns the most recent date stored for each available
// source. Sources that cannot be read are left out.
func (s *Sources) LatestDates(ctx context.Context) map[string]string {
	out := make(map[string]string, len(freshnessColumns))
	for _, fc := range freshnessColumns {
		h := s.handleOf(fc.source)
		if h.err != nil {
			continue
		}
		lctx, cancel := context.WithTimeout(ctx, s.timeout)
		latest, err := h.src.LatestDate(lctx, fc.table, fc.column)
		cancel()
		if err != nil {
			s.logger.Debug("failed to read latest date", slog.String("source", fc.source), slog.Any("error", err))
			continue
		}
		out[fc.source] = latest
	}
	return out
}

// handleOf returns the database that stores a logical source.
func (s *Sources) handleOf(source string) handle {
	switch source {
	case SourceYields:
		return s.plte
	case SourceOwnership:
		return s.ownership
	case SourceTransactions:
		return s.transactions
	default:
		return s.market
	}
}
