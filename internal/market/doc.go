// Package market computes the day-over-day figures of the daily market update.
//
// Every function in this package is pure: it receives rows that were already
// fetched and returns a value plus an ok flag. ok is false when the rows do
// not hold enough observations for the computation ("no result"); callers
// must check it and omit the corresponding report section. Invalid numbers
// are filtered, never reported as errors.
//
// Rows are compared only within the same series and only across the two
// most recent observation dates present in the input.
package market
