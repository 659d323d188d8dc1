package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"ventspec/internal"
)

const exportSheet = "Spec"

// ExportRowsToXLSX writes the final row set to an xlsx workbook, one row per
// Row in the order given, under a fixed four-column header.
func ExportRowsToXLSX(rows []internal.Row, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return err
	}

	headers := []string{"Element", "Wymiar", "Ilość", "Uwagi"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(exportSheet, cell, h)
	}

	for i, row := range rows {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(exportSheet, cell, value)
		}
		set(1, row.Element)
		set(2, row.Dimension)
		set(3, row.Quantity)
		set(4, row.Notes)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
