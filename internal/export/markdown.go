package export

import (
	"bytes"

	"github.com/olekukonko/tablewriter"
)

// WriteMarkdown renders a Table as a borderless ASCII/Markdown table (no
// outer border, "-" row separator), for terminal and summary output.
func WriteMarkdown(t Table) []byte {
	var buf bytes.Buffer

	tw := tablewriter.NewWriter(&buf)
	tw.SetHeader(t.Headers)
	tw.SetBorder(false)
	tw.SetRowSeparator("-")
	for _, row := range t.Rows {
		tw.Append(row)
	}
	tw.Render()

	return buf.Bytes()
}
