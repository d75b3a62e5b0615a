package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"catalogserver/tabular"
)

// ReadAny читает табличный файл в RawTable. Формат определяется по
// расширению: .xlsx/.xls — книга Excel (первый лист или лист из sheet),
// иначе — CSV. Структурные ошибки (нечитаемый файл, битая книга)
// фатальны для всего вызова и возвращаются как ошибка.
func ReadAny(filePath, sheet string) (*tabular.Table, error) {
	lower := strings.ToLower(filePath)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xls") {
		return ReadExcelFile(filePath, sheet)
	}
	return ReadCSVFile(filePath)
}

// ReadExcelFile читает лист книги Excel в RawTable. Пустой sheet означает
// первый лист; иначе sheet трактуется как имя листа или числовой индекс.
func ReadExcelFile(filePath, sheet string) (*tabular.Table, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName, err := resolveSheetName(f, sheet)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from sheet %q: %w", sheetName, err)
	}

	return rowsToTable(rows)
}

// resolveSheetName выбирает лист по имени, индексу или берет первый
func resolveSheetName(f *excelize.File, sheet string) (string, error) {
	if sheet == "" {
		name := f.GetSheetName(0)
		if name == "" {
			return "", fmt.Errorf("no sheets found in Excel file")
		}
		return name, nil
	}

	if idx, err := strconv.Atoi(sheet); err == nil {
		name := f.GetSheetName(idx)
		if name == "" {
			return "", fmt.Errorf("sheet index %d out of range", idx)
		}
		return name, nil
	}

	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return "", fmt.Errorf("sheet %q not found in Excel file", sheet)
	}
	return sheet, nil
}

// ReadCSVFile читает CSV-файл в RawTable. Файлы не в UTF-8
// перекодируются из Windows-1251 (типичная кодировка выгрузок из 1С и
// старого Excel), BOM отбрасывается.
func ReadCSVFile(filePath string) (*tabular.Table, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	data = decodeToUTF8(data)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // ряды выравниваются по заголовку ниже

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	return rowsToTable(rows)
}

// decodeToUTF8 отбрасывает BOM и перекодирует не-UTF-8 содержимое из CP1251
func decodeToUTF8(data []byte) []byte {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(data) {
		return data
	}

	decoded, _, err := transform.Bytes(charmap.Windows1251.NewDecoder(), data)
	if err != nil {
		log.Printf("Warning: failed to transcode CSV from Windows-1251: %v", err)
		return data
	}
	return decoded
}

// rowsToTable строит RawTable из строк: первая строка — заголовки,
// остальные — данные. Короткие строки дополняются отсутствующими
// значениями до ширины заголовка, лишние ячейки отбрасываются.
// Пустая ячейка считается отсутствующим значением, не пустой строкой.
func rowsToTable(rows [][]string) (*tabular.Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("file has no header row")
	}

	headers := rows[0]
	if len(headers) == 0 {
		return nil, fmt.Errorf("file header row is empty")
	}

	table := tabular.NewTable()
	for colIdx, header := range headers {
		cells := make([]tabular.Cell, 0, len(rows)-1)
		for _, row := range rows[1:] {
			if colIdx >= len(row) || row[colIdx] == "" {
				cells = append(cells, tabular.Absent())
				continue
			}
			cells = append(cells, tabular.String(row[colIdx]))
		}
		table.AddColumn(header, cells)
	}
	return table, nil
}
