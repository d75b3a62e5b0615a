package tabular

// rowComplete проверяет, что в строке присутствуют все обязательные поля.
// Для строковых полей sku и name пустое значение после обрезки считается
// отсутствующим: запись каталога без ключа или названия невалидна.
func rowComplete(t *Table, row int) bool {
	for _, field := range RequiredFields {
		c := t.Cell(field, row)
		if c.IsAbsent() {
			return false
		}
		if field == FieldSKU || field == FieldName {
			if s, ok := c.AsString(); ok && s == "" {
				return false
			}
		}
	}
	return true
}

// DropIncompleteRows отбрасывает строки, где отсутствует любое из полей
// sku, name, price, quantity, tx_date. Категория освобождена от проверки —
// её отсутствие ниже по пайплайну превращается в пустую строку.
func DropIncompleteRows(t *Table) *Table {
	keep := make([]int, 0, t.RowCount())
	for row := 0; row < t.RowCount(); row++ {
		if rowComplete(t, row) {
			keep = append(keep, row)
		}
	}
	return t.selectRows(keep)
}

// ClampNonNegative заменяет отрицательные числовые значения колонки нулем.
// Нечисловые и отсутствующие ячейки не трогает.
func ClampNonNegative(t *Table, name string) *Table {
	out := NewTable()
	for _, col := range t.Columns {
		if col.Name != name {
			out.AddColumn(col.Name, col.Cells)
			continue
		}
		cells := make([]Cell, len(col.Cells))
		for i, c := range col.Cells {
			if f, ok := c.AsNumber(); ok && f < 0 {
				cells[i] = Number(0)
			} else {
				cells[i] = c
			}
		}
		out.AddColumn(col.Name, cells)
	}
	return out
}

// ValidateRows отбрасывает неполные строки и затем ограничивает price и
// quantity снизу нулем. Порядок фиксирован: сначала отбрасывание, потом
// клампинг — строка с отсутствующей ценой никогда не "чинится" клампингом.
func ValidateRows(t *Table) *Table {
	t = DropIncompleteRows(t)
	t = ClampNonNegative(t, FieldQuantity)
	t = ClampNonNegative(t, FieldPrice)
	return t
}
