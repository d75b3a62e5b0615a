package tabular

import "strings"

// CleanColumnName приводит произвольный заголовок к каноническому виду:
// обрезка пробелов, внутренние пробелы в "_", удаление всего вне
// [0-9a-zA-Z_], нижний регистр. Идемпотентна; для мусорных заголовков
// выдает пустую строку вместо ошибки.
func CleanColumnName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "_")

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CleanColumns возвращает таблицу с теми же данными, но каноническими
// именами колонок. Чистая функция, исходная таблица не меняется.
func CleanColumns(t *Table) *Table {
	out := NewTable()
	for _, col := range t.Columns {
		out.AddColumn(CleanColumnName(col.Name), col.Cells)
	}
	return out
}
