package model

import "time"

// SectionID identifies a topical block of the report.
// The numeric order of the IDs is the order in which blocks are rendered.
type SectionID int

const (
	// SectionSUNMarket holds the headline lines for the SUN market
	// (average yield move, rupiah, IHSG).
	SectionSUNMarket SectionID = iota

	// SectionOwnership holds SBN ownership by investor group.
	SectionOwnership

	// SectionTransactions holds the daily outright/repo volumes.
	SectionTransactions

	// SectionBenchmark holds the benchmark series yield table.
	SectionBenchmark

	// SectionTreasury holds Indonesia global bond vs US Treasury 10Y.
	SectionTreasury

	// SectionCDS holds the sovereign CDS spreads.
	SectionCDS

	// SectionNDF holds USD/IDR non-deliverable forwards.
	SectionNDF

	// SectionGlobalEquities holds global stock index moves.
	SectionGlobalEquities

	// SectionCommodities holds commodity prices.
	SectionCommodities
)

// Group is the headline group a section is printed under.
type Group int

const (
	// GroupDomestic is "Headlines Pasar SUN".
	GroupDomestic Group = iota

	// GroupBenchmark is "Yield SUN Seri Benchmark".
	GroupBenchmark

	// GroupInternational is "Headlines Pasar Internasional".
	GroupInternational
)

// Group returns the headline group of the section.
func (id SectionID) Group() Group {
	switch {
	case id <= SectionTransactions:
		return GroupDomestic
	case id == SectionBenchmark:
		return GroupBenchmark
	default:
		return GroupInternational
	}
}

// String returns a short machine-friendly name used in logs.
func (id SectionID) String() string {
	switch id {
	case SectionSUNMarket:
		return "sun-market"
	case SectionOwnership:
		return "ownership"
	case SectionTransactions:
		return "transactions"
	case SectionBenchmark:
		return "benchmark"
	case SectionTreasury:
		return "treasury"
	case SectionCDS:
		return "cds"
	case SectionNDF:
		return "ndf"
	case SectionGlobalEquities:
		return "global-equities"
	case SectionCommodities:
		return "commodities"
	default:
		return "unknown"
	}
}

// Table is a small fixed-column table rendered inside a section.
type Table struct {
	Header []string
	Rows   [][]string
}

// Section is one topical block of narrative lines.
// Lines are fully formatted; writers only add layout around them.
type Section struct {
	ID    SectionID
	Lines []string

	// Table is set only for tabular sections (benchmark yields).
	Table *Table
}

// Report is the complete daily market update.
type Report struct {
	// Date is the latest trade date of the yield data, as stored.
	Date string

	// Sections holds the rendered blocks ordered by SectionID.
	// Blocks without data are absent.
	Sections []Section

	// GeneratedAt is the generation timestamp printed in the footer.
	GeneratedAt time.Time
}

// NewReport creates an empty report for the given date.
func NewReport(date string, generatedAt time.Time) *Report {
	return &Report{
		Date:        date,
		Sections:    make([]Section, 0),
		GeneratedAt: generatedAt,
	}
}

// AddSection appends a section, keeping Sections ordered by ID.
// Sections without lines and without a table are ignored.
func (r *Report) AddSection(s Section) {
	if len(s.Lines) == 0 && s.Table == nil {
		return
	}
	i := len(r.Sections)
	for i > 0 && r.Sections[i-1].ID > s.ID {
		i--
	}
	r.Sections = append(r.Sections, Section{})
	copy(r.Sections[i+1:], r.Sections[i:])
	r.Sections[i] = s
}

// Section returns the section with the given ID, if present.
func (r *Report) Section(id SectionID) (Section, bool) {
	for _, s := range r.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// SectionsIn returns the sections of one group in render order.
func (r *Report) SectionsIn(g Group) []Section {
	var out []Section
	for _, s := range r.Sections {
		if s.ID.Group() == g {
			out = append(out, s)
		}
	}
	return out
}
