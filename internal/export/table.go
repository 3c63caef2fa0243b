// Package export renders stage-1 and stage-2 result tables as CSV, XLSX and
// Markdown, per §6 of the specification.
package export

// Table is a generic tabular result, independent of its eventual container
// format.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}
