package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/marketupdate/internal/model"
)

// Layout constants of the text bulletin.
const (
	ruleWidth = 80

	// TimestampLayout is the layout of the "Report generated:" line.
	TimestampLayout = "2006-01-02 15:04:05"
)

var (
	doubleRule = strings.Repeat("=", ruleWidth)
	singleRule = strings.Repeat("-", ruleWidth)
)

// Fixed headings of the bulletin.
const (
	headingAgency        = "DIREKTORAT JENDERAL PENGELOLAAN PEMBIAYAAN DAN RISIKO"
	headingMinistry      = "KEMENTERIAN KEUANGAN RI"
	headingTitle         = "SBN Daily Market Update"
	headingDomestic      = "Headlines Pasar SUN"
	headingBenchmark     = "Yield SUN Seri Benchmark"
	headingInternational = "Headlines Pasar Internasional"
)

// TextWriter outputs the plain text bulletin.
//
// The layout is fixed: group headings are always printed, sections without
// data are left out without a placeholder, and the blank lines between
// blocks do not depend on which sections are present.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report as plain text.
func (w *TextWriter) Write(report *model.Report) (int, error) {
	return io.WriteString(w.output, Render(report))
}

// Render returns the plain text bulletin for report.
func Render(report *model.Report) string {
	var sb strings.Builder

	writeHeader(&sb, report)
	writeDomestic(&sb, report)
	writeBenchmark(&sb, report)
	writeInternational(&sb, report)
	writeFooter(&sb, report)

	return sb.String()
}

func writeHeader(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\n" + doubleRule + "\n")
	sb.WriteString(headingAgency + "\n")
	sb.WriteString(headingMinistry + "\n")
	sb.WriteString(doubleRule + "\n")
	sb.WriteString("\n" + report.Date + "\n\n")
	sb.WriteString(headingTitle + "\n\n")
}

// writeDomestic prints the SUN market, ownership and transaction blocks.
// Each block is followed by its separator even when it is empty.
func writeDomestic(sb *strings.Builder, report *model.Report) {
	sb.WriteString(headingDomestic + "\n")
	sb.WriteString(singleRule + "\n")

	writeLines(sb, report, model.SectionSUNMarket)
	sb.WriteString("\n")
	writeLines(sb, report, model.SectionOwnership)
	sb.WriteString("\n")
	writeLines(sb, report, model.SectionTransactions)
	sb.WriteString("\n\n")
}

func writeBenchmark(sb *strings.Builder, report *model.Report) {
	section, ok := report.Section(model.SectionBenchmark)
	if ok && section.Table != nil {
		sb.WriteString(headingBenchmark + "\n")
		sb.WriteString(singleRule + "\n")
		writeTable(sb, section.Table)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

// writeTable prints the benchmark table. Yield cells already carry their
// percent sign, so they are right-aligned one column wider than the
// numbers they hold.
func writeTable(sb *strings.Builder, t *model.Table) {
	fmt.Fprintf(sb, "%-10s %15s %15s %18s\n", cell(t.Header, 0), cell(t.Header, 1), cell(t.Header, 2), cell(t.Header, 3))
	sb.WriteString(singleRule + "\n")
	for _, row := range t.Rows {
		fmt.Fprintf(sb, "%-10s %15s %15s %17s\n", cell(row, 0), cell(row, 1), cell(row, 2), cell(row, 3))
	}
}

// writeInternational prints the international group. Every block after the
// treasury comparison is preceded by a blank line.
func writeInternational(sb *strings.Builder, report *model.Report) {
	sb.WriteString(headingInternational + "\n")
	sb.WriteString(singleRule + "\n")

	for _, section := range report.SectionsIn(model.GroupInternational) {
		if section.ID != model.SectionTreasury {
			sb.WriteString("\n")
		}
		for _, line := range section.Lines {
			sb.WriteString(line + "\n")
		}
	}
}

func writeFooter(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\n" + doubleRule + "\n")
	sb.WriteString("Report generated: " + report.GeneratedAt.Format(TimestampLayout) + "\n")
	sb.WriteString(doubleRule + "\n\n")
}

func writeLines(sb *strings.Builder, report *model.Report, id model.SectionID) {
	section, ok := report.Section(id)
	if !ok {
		return
	}
	for _, line := range section.Lines {
		sb.WriteString(line + "\n")
	}
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
