// Package database reads the market data sources of the daily update.
//
// Every source is an existing SQLite file opened read-only through
// modernc.org/sqlite. The package never creates, migrates or writes a
// database: a missing file or a failing query only makes that source
// unavailable.
//
// Fetch methods never return an error. They return a model.Dataset that
// either carries the rows or an *UnavailableError, so one broken source
// removes only the report sections that depend on it.
//
// Dates are selected as TEXT so they reach the report exactly as stored.
// NULL numeric values become NaN.
package database
