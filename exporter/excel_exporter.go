package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"catalogserver/database"
	"catalogserver/tabular"
)

// Константы оформления экспорта. Цвета и ширина — данные конфигурации,
// а не поведение, поэтому собраны здесь, а не разбросаны по коду.
const (
	SheetName = "Products"

	HeaderFillColor = "#4F81BD"
	SKUFillColor    = "#BDD7EE"
	PriceFillColor  = "#C6E0B4"

	HeaderFontSize    = 14.0
	HeaderFontColor   = "#FFFFFF"
	HeaderColumnWidth = 30.0

	dateNumberFormat = "yyyy-mm-dd"
)

// ExcelExporter пишет стилизованные книги Excel с каталогом продуктов
type ExcelExporter struct {
	exportDir string
}

// NewExcelExporter создает экспортер, пишущий в указанную директорию
func NewExcelExporter(exportDir string) *ExcelExporter {
	return &ExcelExporter{exportDir: exportDir}
}

// ExportProducts пишет продукты на лист "Products": строка заголовков с
// каноническими именами колонок, затем по строке на запись, значения в
// родных типах. Имя файла бесколлизионное: <uuid>_<stem>.xlsx.
// Возвращает путь к записанному файлу.
func (e *ExcelExporter) ExportProducts(products []database.Product, stem string) (string, error) {
	if err := os.MkdirAll(e.exportDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := e.writeHeader(f); err != nil {
		return "", err
	}
	if err := e.writeRows(f, products); err != nil {
		return "", err
	}
	if err := e.styleKeyColumns(f, len(products)); err != nil {
		return "", err
	}

	filePath := filepath.Join(e.exportDir, uniqueFileName(stem))
	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("failed to save Excel file: %w", err)
	}

	return filePath, nil
}

// writeHeader пишет строку заголовков и применяет базовый стиль:
// жирный белый шрифт 14pt, центрирование, заливка HeaderFillColor,
// ширина каждой колонки 30
func (e *ExcelExporter) writeHeader(f *excelize.File) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: HeaderFontSize, Color: HeaderFontColor},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{HeaderFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range tabular.CanonicalFields {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(SheetName, cell, header)
		f.SetCellStyle(SheetName, cell, cell, headerStyle)

		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(SheetName, col, col, HeaderColumnWidth)
	}
	return nil
}

// writeRows пишет данные: числа как числа, даты как даты
func (e *ExcelExporter) writeRows(f *excelize.File, products []database.Product) error {
	dateFmt := dateNumberFormat
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return fmt.Errorf("failed to create date style: %w", err)
	}

	for rowIdx, p := range products {
		row := rowIdx + 2
		f.SetCellValue(SheetName, fmt.Sprintf("A%d", row), p.SKU)
		f.SetCellValue(SheetName, fmt.Sprintf("B%d", row), p.Name)
		f.SetCellValue(SheetName, fmt.Sprintf("C%d", row), p.Category)
		f.SetCellValue(SheetName, fmt.Sprintf("D%d", row), p.Price)
		f.SetCellValue(SheetName, fmt.Sprintf("E%d", row), p.Quantity)
		f.SetCellValue(SheetName, fmt.Sprintf("F%d", row), p.TxDate)
		f.SetCellStyle(SheetName, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), dateStyle)
	}
	return nil
}

// styleKeyColumns перекрашивает колонки sku и price. Колонки ищутся
// чтением подписи заголовка из уже сформированного листа без учета
// регистра, а не по фиксированному индексу.
func (e *ExcelExporter) styleKeyColumns(f *excelize.File, rowCount int) error {
	skuStyle, err := e.keyColumnStyle(f, SKUFillColor)
	if err != nil {
		return err
	}
	priceStyle, err := e.keyColumnStyle(f, PriceFillColor)
	if err != nil {
		return err
	}

	for i := range tabular.CanonicalFields {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		label, err := f.GetCellValue(SheetName, cell)
		if err != nil {
			return fmt.Errorf("failed to read back header cell %s: %w", cell, err)
		}

		var style int
		switch strings.ToLower(strings.TrimSpace(label)) {
		case tabular.FieldSKU:
			style = skuStyle
		case tabular.FieldPrice:
			style = priceStyle
		default:
			continue
		}

		col, _ := excelize.ColumnNumberToName(i + 1)
		// Заголовок и все ячейки данных колонки
		f.SetCellStyle(SheetName, fmt.Sprintf("%s1", col), fmt.Sprintf("%s1", col), style)
		if rowCount > 0 {
			dataStyle, err := f.NewStyle(&excelize.Style{
				Fill: excelize.Fill{Type: "pattern", Color: []string{fillColorForField(label)}, Pattern: 1},
			})
			if err != nil {
				return fmt.Errorf("failed to create data fill style: %w", err)
			}
			f.SetCellStyle(SheetName,
				fmt.Sprintf("%s2", col),
				fmt.Sprintf("%s%d", col, rowCount+1),
				dataStyle)
		}
	}
	return nil
}

// keyColumnStyle стиль заголовка ключевой колонки: базовое оформление
// заголовка, но с особой заливкой
func (e *ExcelExporter) keyColumnStyle(f *excelize.File, fillColor string) (int, error) {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: HeaderFontSize, Color: HeaderFontColor},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{fillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create key column style: %w", err)
	}
	return style, nil
}

func fillColorForField(label string) string {
	if strings.EqualFold(strings.TrimSpace(label), tabular.FieldPrice) {
		return PriceFillColor
	}
	return SKUFillColor
}

// uniqueFileName возвращает бесколлизионное имя файла экспорта
func uniqueFileName(stem string) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	if stem == "" {
		stem = "export"
	}
	if !strings.HasSuffix(strings.ToLower(stem), ".xlsx") {
		stem += ".xlsx"
	}
	return fmt.Sprintf("%s_%s", id, stem)
}
