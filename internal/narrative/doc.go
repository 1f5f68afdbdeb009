// Package narrative renders computed market figures into the Indonesian
// sentences of the daily market update.
//
// Every function returns fully formatted lines. Layout (headings, rules and
// blank lines between sections) belongs to the report writers.
//
// Numbers that the report prints with thousands separators, such as
// "Rp16,250/US$", use English grouping through golang.org/x/text.
package narrative
