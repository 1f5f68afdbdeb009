// Package report renders a model.Report.
//
// This package contains writers for different output formats:
//   - TextWriter: the fixed-layout plain text bulletin printed to the
//     terminal and exported as Market_Update_YYYYMMDD.txt
//   - MarkdownWriter: the same content as a Markdown document
//
// Writers only add layout. All wording and number formatting is done by
// the narrative package before sections reach the report.
package report
