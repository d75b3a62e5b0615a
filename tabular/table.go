package tabular

import (
	"strconv"
	"time"
)

// CellKind тип значения в ячейке
type CellKind int

const (
	// CellAbsent marks a cell whose value is missing or failed coercion.
	// Distinct from an empty string or zero.
	CellAbsent CellKind = iota
	CellString
	CellNumber
	CellDate
)

// Cell одно значение таблицы. Absence is carried explicitly so that
// coercion failures never need sentinels or panics.
type Cell struct {
	kind CellKind
	str  string
	num  float64
	date time.Time
}

// Absent возвращает отсутствующее значение
func Absent() Cell {
	return Cell{kind: CellAbsent}
}

// String создает строковую ячейку
func String(s string) Cell {
	return Cell{kind: CellString, str: s}
}

// Number создает числовую ячейку
func Number(f float64) Cell {
	return Cell{kind: CellNumber, num: f}
}

// Date создает ячейку с календарной датой (время суток отбрасывается)
func Date(t time.Time) Cell {
	y, m, d := t.Date()
	return Cell{kind: CellDate, date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Kind возвращает тип ячейки
func (c Cell) Kind() CellKind { return c.kind }

// IsAbsent сообщает, отсутствует ли значение
func (c Cell) IsAbsent() bool { return c.kind == CellAbsent }

// AsString возвращает строковое значение, ok=false для отсутствующих
func (c Cell) AsString() (string, bool) {
	switch c.kind {
	case CellString:
		return c.str, true
	case CellNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64), true
	case CellDate:
		return c.date.Format("2006-01-02"), true
	}
	return "", false
}

// AsNumber возвращает числовое значение, ok=false для нечисловых ячеек
func (c Cell) AsNumber() (float64, bool) {
	if c.kind != CellNumber {
		return 0, false
	}
	return c.num, true
}

// AsDate возвращает дату, ok=false для ячеек без даты
func (c Cell) AsDate() (time.Time, bool) {
	if c.kind != CellDate {
		return time.Time{}, false
	}
	return c.date, true
}

// Column именованная колонка таблицы
type Column struct {
	Name  string
	Cells []Cell
}

// Table прямоугольная таблица: упорядоченные именованные колонки равной длины.
// Это промежуточное представление между чтением файла и каталогом.
type Table struct {
	Columns []Column
}

// NewTable создает пустую таблицу
func NewTable() *Table {
	return &Table{}
}

// AddColumn добавляет колонку в конец таблицы
func (t *Table) AddColumn(name string, cells []Cell) {
	t.Columns = append(t.Columns, Column{Name: name, Cells: cells})
}

// Column возвращает колонку по имени (первое совпадение по порядку)
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// HasColumn сообщает о наличии колонки
func (t *Table) HasColumn(name string) bool {
	_, ok := t.Column(name)
	return ok
}

// ColumnNames возвращает имена колонок в порядке таблицы
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// RowCount возвращает число строк данных
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// Cell возвращает значение по имени колонки и индексу строки.
// Отсутствующая колонка или выход за границы дают Absent.
func (t *Table) Cell(name string, row int) Cell {
	col, ok := t.Column(name)
	if !ok || row < 0 || row >= len(col.Cells) {
		return Absent()
	}
	return col.Cells[row]
}

// selectRows возвращает копию таблицы только с указанными строками,
// сохраняя порядок колонок
func (t *Table) selectRows(keep []int) *Table {
	out := NewTable()
	for _, col := range t.Columns {
		cells := make([]Cell, 0, len(keep))
		for _, idx := range keep {
			cells = append(cells, col.Cells[idx])
		}
		out.AddColumn(col.Name, cells)
	}
	return out
}
