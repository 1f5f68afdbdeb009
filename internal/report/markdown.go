package report

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/marketupdate/internal/model"
)

// MarkdownWriter outputs the report in Markdown format.
// It carries the same lines as the text bulletin; the benchmark series are
// rendered as a Markdown table.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeGroup(md, headingDomestic, report.SectionsIn(model.GroupDomestic))
	w.writeBenchmark(md, report)
	w.writeGroup(md, headingInternational, report.SectionsIn(model.GroupInternational))
	w.writeFooter(md, report)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1(headingTitle)
	md.PlainText("")
	md.PlainText("**" + headingAgency + "**  ")
	md.PlainText("**" + headingMinistry + "**")
	md.PlainText("")
	md.PlainText(report.Date)
	md.PlainText("")
}

// writeGroup writes a headline group. Group headings are always written,
// matching the text bulletin.
func (w *MarkdownWriter) writeGroup(md *markdown.Markdown, heading string, sections []model.Section) {
	md.H2(heading)
	md.PlainText("")

	for _, s := range sections {
		w.writeLines(md, s.Lines)
		md.PlainText("")
	}
}

// writeLines converts bulletin lines to Markdown. "• " lines become
// paragraphs, "  - " lines are collected into bullet lists and indented
// continuation lines stay in the paragraph above them.
func (w *MarkdownWriter) writeLines(md *markdown.Markdown, lines []string) {
	var items []string
	flush := func() {
		if len(items) > 0 {
			md.BulletList(items...)
			items = nil
		}
	}

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "  - "):
			items = append(items, strings.TrimPrefix(line, "  - "))
		case strings.HasPrefix(line, "• "):
			flush()
			md.PlainText(strings.TrimPrefix(line, "• "))
		default:
			flush()
			md.PlainText(strings.TrimSpace(line))
		}
	}
	flush()
}

func (w *MarkdownWriter) writeBenchmark(md *markdown.Markdown, report *model.Report) {
	section, ok := report.Section(model.SectionBenchmark)
	if !ok || section.Table == nil {
		return
	}

	md.H2(headingBenchmark)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: section.Table.Header,
		Rows:   section.Table.Rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeFooter(md *markdown.Markdown, report *model.Report) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated: %s*", report.GeneratedAt.Format(TimestampLayout))
}
