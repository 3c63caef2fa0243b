package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX renders one workbook with one sheet per table, named after each
// table's Title, per §6 ("both tables additionally exportable... as XLSX,
// one workbook, one sheet per stage").
func WriteXLSX(tables ...Table) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, t := range tables {
		sheetName := t.Title
		if sheetName == "" {
			sheetName = fmt.Sprintf("Sheet%d", i+1)
		}

		index, err := f.NewSheet(sheetName)
		if err != nil {
			return nil, fmt.Errorf("export: new sheet %q: %w", sheetName, err)
		}
		if i == 0 {
			f.SetActiveSheet(index)
		}

		for col, h := range t.Headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			_ = f.SetCellValue(sheetName, cell, h)
		}
		for rowIdx, row := range t.Rows {
			for colIdx, val := range row {
				cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
				_ = f.SetCellValue(sheetName, cell, val)
			}
		}
	}

	if len(tables) > 0 {
		_ = f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
