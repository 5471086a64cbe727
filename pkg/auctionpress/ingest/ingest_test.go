package ingest

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeWorkbook builds an xlsx file in a temp dir. sheets maps sheet name to
// its rows; the first named sheet becomes the workbook's first sheet.
func writeWorkbook(t *testing.T, sheetOrder []string, sheets map[string][][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range sheetOrder {
		if i == 0 {
			// Rename the default sheet so indexed access hits it.
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				t.Fatalf("create sheet %s: %v", name, err)
			}
		}
		for rowIdx, row := range sheets[name] {
			cell, _ := excelize.CoordinatesToCellName(1, rowIdx+1)
			values := make([]interface{}, len(row))
			for i, v := range row {
				values[i] = v
			}
			if err := f.SetSheetRow(name, cell, &values); err != nil {
				t.Fatalf("set row: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func openTestWorkbook(t *testing.T, sheetOrder []string, sheets map[string][][]string) *Workbook {
	t.Helper()
	wb, err := OpenWorkbook(writeWorkbook(t, sheetOrder, sheets))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	t.Cleanup(func() { wb.Close() })
	return wb
}
