package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"ventspec/internal"
)

func TestExportRowsToXLSX(t *testing.T) {
	rows := []internal.Row{
		{Element: "Kolano", Dimension: "Ø160", Quantity: 2},
		{Element: "Rura SPIRO", Dimension: "Ø160 mm", Quantity: 1, Notes: "Etykiety; bez długości"},
	}

	path := filepath.Join(t.TempDir(), "out", "spec.xlsx")
	if err := ExportRowsToXLSX(rows, path); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()

	got, err := f.GetRows("Spec")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(got))
	}
	if got[0][0] != "Element" || got[0][1] != "Wymiar" || got[0][2] != "Ilość" || got[0][3] != "Uwagi" {
		t.Fatalf("unexpected header row: %v", got[0])
	}
	if got[1][0] != "Kolano" || got[1][1] != "Ø160" || got[1][2] != "2" {
		t.Fatalf("unexpected first data row: %v", got[1])
	}
	if got[2][3] != "Etykiety; bez długości" {
		t.Fatalf("unexpected notes cell: %v", got[2])
	}
}
