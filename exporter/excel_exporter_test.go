package exporter

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"catalogserver/database"
)

func sampleProducts() []database.Product {
	return []database.Product{
		{SKU: "W-1", Name: "Widget", Category: "Tools", Price: 19.99, Quantity: 10,
			TxDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{SKU: "G-2", Name: "Gadget", Category: "", Price: 5, Quantity: 3,
			TxDate: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)},
	}
}

// cellFillColor возвращает цвет заливки ячейки без # и альфа-префикса
func cellFillColor(t *testing.T, f *excelize.File, cell string) string {
	t.Helper()
	styleID, err := f.GetCellStyle(SheetName, cell)
	if err != nil {
		t.Fatalf("GetCellStyle(%s) error: %v", cell, err)
	}
	style, err := f.GetStyle(styleID)
	if err != nil {
		t.Fatalf("GetStyle(%d) error: %v", styleID, err)
	}
	if style == nil || len(style.Fill.Color) == 0 {
		return ""
	}
	color := strings.ToUpper(strings.TrimPrefix(style.Fill.Color[0], "#"))
	return strings.TrimPrefix(color, "FF")
}

// TestExportProducts_FileAndContents файл создается с уникальным именем и данными
func TestExportProducts_FileAndContents(t *testing.T) {
	dir := t.TempDir()
	e := NewExcelExporter(dir)

	path, err := e.ExportProducts(sampleProducts(), "products_export")
	if err != nil {
		t.Fatalf("ExportProducts() error: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("export must land in the export dir, got %s", path)
	}
	if !strings.HasSuffix(path, "_products_export.xlsx") {
		t.Errorf("unexpected file name: %s", filepath.Base(path))
	}

	// Повторный экспорт не затирает предыдущий
	path2, err := e.ExportProducts(sampleProducts(), "products_export")
	if err != nil {
		t.Fatalf("ExportProducts() second call error: %v", err)
	}
	if path == path2 {
		t.Error("export file names must be collision-free")
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open exported workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows() error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("want header + 2 data rows, got %d", len(rows))
	}

	wantHeader := []string{"sku", "name", "category", "price", "quantity", "tx_date"}
	for i, want := range wantHeader {
		if rows[0][i] != want {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], want)
		}
	}
	if rows[1][0] != "W-1" || rows[1][1] != "Widget" {
		t.Errorf("unexpected first data row: %v", rows[1])
	}
	if rows[1][5] != "2024-01-05" {
		t.Errorf("tx_date should render as yyyy-mm-dd, got %q", rows[1][5])
	}
}

// TestExportProducts_HeaderStyles заливки заголовков: sku и price особые
func TestExportProducts_HeaderStyles(t *testing.T) {
	dir := t.TempDir()
	e := NewExcelExporter(dir)

	path, err := e.ExportProducts(sampleProducts(), "styles")
	if err != nil {
		t.Fatalf("ExportProducts() error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open exported workbook: %v", err)
	}
	defer f.Close()

	// A1=sku, D1=price, B1=name (обычный заголовок)
	if got := cellFillColor(t, f, "A1"); got != "BDD7EE" {
		t.Errorf("sku header fill = %q, want BDD7EE", got)
	}
	if got := cellFillColor(t, f, "D1"); got != "C6E0B4" {
		t.Errorf("price header fill = %q, want C6E0B4", got)
	}
	if got := cellFillColor(t, f, "B1"); got != "4F81BD" {
		t.Errorf("name header fill = %q, want 4F81BD", got)
	}

	// Ячейки данных ключевых колонок тоже подкрашены
	if got := cellFillColor(t, f, "A2"); got != "BDD7EE" {
		t.Errorf("sku data fill = %q, want BDD7EE", got)
	}
	if got := cellFillColor(t, f, "D3"); got != "C6E0B4" {
		t.Errorf("price data fill = %q, want C6E0B4", got)
	}
	if got := cellFillColor(t, f, "B2"); got == "BDD7EE" || got == "C6E0B4" {
		t.Errorf("name data cell must not carry key-column fill, got %q", got)
	}

	// Ширина колонок фиксированная
	width, err := f.GetColWidth(SheetName, "A")
	if err != nil {
		t.Fatalf("GetColWidth() error: %v", err)
	}
	if width != HeaderColumnWidth {
		t.Errorf("column width = %v, want %v", width, HeaderColumnWidth)
	}
}

// TestExportProducts_Empty пустой каталог — только строка заголовков
func TestExportProducts_Empty(t *testing.T) {
	e := NewExcelExporter(t.TempDir())

	path, err := e.ExportProducts(nil, "")
	if err != nil {
		t.Fatalf("ExportProducts() error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open exported workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows() error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("want only the header row, got %d rows", len(rows))
	}
}
