package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteMarkdown_ContainsHeaderAndRows(t *testing.T) {
	table := Table{
		Headers: []string{"Group", "Trainer"},
		Rows:    [][]string{{"ACME-G001", "T1"}},
	}

	out := string(WriteMarkdown(table))

	assert.Contains(t, out, "GROUP")
	assert.Contains(t, out, "ACME-G001")
	assert.Contains(t, out, "T1")
}
