package tabular

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Канонические имена полей каталога
const (
	FieldSKU      = "sku"
	FieldName     = "name"
	FieldCategory = "category"
	FieldPrice    = "price"
	FieldQuantity = "quantity"
	FieldTxDate   = "tx_date"
)

// CanonicalFields порядок канонических полей каталога
var CanonicalFields = []string{
	FieldSKU, FieldName, FieldCategory, FieldPrice, FieldQuantity, FieldTxDate,
}

// RequiredFields поля, без которых строка отбрасывается (category не входит)
var RequiredFields = []string{
	FieldSKU, FieldName, FieldPrice, FieldQuantity, FieldTxDate,
}

// AliasEntry одна запись таблицы синонимов
type AliasEntry struct {
	Alias     string `yaml:"alias"`
	Canonical string `yaml:"canonical"`
}

// AliasMapping упорядоченная таблица синоним -> каноническое имя.
// Таблица — это данные, а не код: дефолт встроен, но её можно
// загрузить из YAML-файла и расширять без правки пайплайна.
type AliasMapping struct {
	entries []AliasEntry
}

// DefaultAliasMapping возвращает встроенную таблицу синонимов
func DefaultAliasMapping() *AliasMapping {
	return &AliasMapping{entries: []AliasEntry{
		{Alias: "product_sku", Canonical: FieldSKU},
		{Alias: "product", Canonical: FieldName},
		{Alias: "title", Canonical: FieldName},
		{Alias: "cat", Canonical: FieldCategory},
		{Alias: "qty", Canonical: FieldQuantity},
		{Alias: "date", Canonical: FieldTxDate},
	}}
}

// LoadAliasMapping загружает таблицу синонимов из YAML-файла.
// Формат: список записей {alias, canonical}. Порядок записей сохраняется.
func LoadAliasMapping(path string) (*AliasMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias mapping file: %w", err)
	}

	var entries []AliasEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse alias mapping YAML: %w", err)
	}

	for i, e := range entries {
		if e.Alias == "" || e.Canonical == "" {
			return nil, fmt.Errorf("alias mapping entry %d: alias and canonical must be non-empty", i)
		}
	}

	return &AliasMapping{entries: entries}, nil
}

// Entries возвращает копию записей таблицы
func (m *AliasMapping) Entries() []AliasEntry {
	out := make([]AliasEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// resolve возвращает каноническое имя для уже очищенного имени колонки
func (m *AliasMapping) resolve(name string) string {
	for _, e := range m.entries {
		if e.Alias == name {
			return e.Canonical
		}
	}
	return name
}

// Apply переименовывает колонки-синонимы в канонические имена за один
// проход. Колонки вне таблицы синонимов проходят без изменений.
// При коллизии имен побеждает более поздняя колонка в порядке таблицы
// (last-write-wins), ранняя отбрасывается.
func (m *AliasMapping) Apply(t *Table) *Table {
	renamed := make([]Column, 0, len(t.Columns))
	for _, col := range t.Columns {
		renamed = append(renamed, Column{Name: m.resolve(col.Name), Cells: col.Cells})
	}

	// Схлопываем дубликаты: последняя колонка с данным именем побеждает
	last := make(map[string]int, len(renamed))
	for i, col := range renamed {
		last[col.Name] = i
	}

	out := NewTable()
	for i, col := range renamed {
		if last[col.Name] != i {
			continue
		}
		out.AddColumn(col.Name, col.Cells)
	}
	return out
}
