package tabular

import (
	"strconv"
	"strings"
	"time"
)

// Форматы дат, принимаемые при коэрции tx_date. Порядок важен:
// сначала ISO, затем распространенные варианты из выгрузок.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"02.01.2006",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"02-Jan-2006",
	"Jan 2, 2006",
}

// CoerceNumeric приводит колонку к числовому типу. Значения, которые не
// парсятся как число, становятся отсутствующими — не нулем и не ошибкой.
// Отсутствующая колонка молча пропускается.
func CoerceNumeric(t *Table, name string) *Table {
	return coerceColumn(t, name, coerceNumberCell)
}

// CoerceString приводит колонку к строковому типу с обрезкой внешних
// пробелов. Не падает никогда; отсутствующие значения остаются отсутствующими.
func CoerceString(t *Table, name string) *Table {
	return coerceColumn(t, name, coerceStringCell)
}

// CoerceDate приводит колонку к календарной дате. Непарсящиеся значения
// становятся отсутствующими, компонент времени суток отбрасывается.
func CoerceDate(t *Table, name string) *Table {
	return coerceColumn(t, name, coerceDateCell)
}

func coerceColumn(t *Table, name string, fn func(Cell) Cell) *Table {
	out := NewTable()
	for _, col := range t.Columns {
		if col.Name != name {
			out.AddColumn(col.Name, col.Cells)
			continue
		}
		cells := make([]Cell, len(col.Cells))
		for i, c := range col.Cells {
			cells[i] = fn(c)
		}
		out.AddColumn(col.Name, cells)
	}
	return out
}

func coerceNumberCell(c Cell) Cell {
	switch c.Kind() {
	case CellNumber:
		return c
	case CellString:
		s, _ := c.AsString()
		s = strings.TrimSpace(s)
		// Запятая как десятичный разделитель встречается в выгрузках из 1С и Excel
		if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
			s = strings.Replace(s, ",", ".", 1)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Absent()
		}
		return Number(f)
	}
	return Absent()
}

func coerceStringCell(c Cell) Cell {
	if c.IsAbsent() {
		return c
	}
	s, _ := c.AsString()
	return String(strings.TrimSpace(s))
}

func coerceDateCell(c Cell) Cell {
	switch c.Kind() {
	case CellDate:
		return c
	case CellString:
		s, _ := c.AsString()
		s = strings.TrimSpace(s)
		if s == "" {
			return Absent()
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return Date(parsed)
			}
		}
		return Absent()
	}
	return Absent()
}

// CoerceForProduct применяет коэрцию типов к фиксированному набору
// целевых колонок каталога. Отсутствующие целевые колонки пропускаются,
// новая колонка не создается.
func CoerceForProduct(t *Table) *Table {
	for _, c := range []string{FieldPrice, FieldQuantity} {
		t = CoerceNumeric(t, c)
	}
	for _, c := range []string{FieldSKU, FieldName, FieldCategory} {
		t = CoerceString(t, c)
	}
	t = CoerceDate(t, FieldTxDate)
	return t
}
