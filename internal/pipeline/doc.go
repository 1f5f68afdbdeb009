// Package pipeline turns fetched market data into a report.
//
// Generation runs in two phases:
//
//  1. The Fetcher queries every data source, concurrently up to a limit,
//     and collects the results in a Datasets bundle. A failing source
//     yields an unavailable dataset; it never stops the other fetches.
//  2. A Pipeline of section steps reads the bundle and adds one section
//     each to the report. Steps share no state, so a section without
//     enough data is simply left out.
//
// Engine ties both phases together and is the entry point used by the CLI.
package pipeline
