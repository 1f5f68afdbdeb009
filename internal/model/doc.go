// Package model defines the data structures shared by the report engine.
//
// This package contains the following main types:
//   - Observation rows (YieldRow, OwnershipRow, FXQuote, ...) read from the
//     source databases
//   - Dataset: the result-or-error value returned by every fetch
//   - DeltaResult: a day-over-day comparison of a single metric
//   - Section and Report: the ordered narrative produced for output
//
// Models live in their own package because database, market, pipeline and
// report all depend on them; keeping them here prevents import cycles.
package model
