// Package main provides the entry point for the marketupdate CLI.
//
// marketupdate builds the SBN daily market update bulletin from the local
// SQLite market databases, prints it and exports it as
// Market_Update_YYYYMMDD.txt.
//
// Usage:
//
//	marketupdate
//	marketupdate -d "10. Database AKP" -o reports --markdown
//	marketupdate init
//
// See --help for all available options.
package main

// main is the entry point for marketupdate.
func main() {
	Execute()
}
