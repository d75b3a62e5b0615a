package tabular

import "time"

// ProductRecord полностью валидная запись каталога после пайплайна,
// до персистенции. Quantity уже усечено до целого (не округлено).
type ProductRecord struct {
	SKU      string
	Name     string
	Category string
	Price    float64
	Quantity int
	TxDate   time.Time
}

// Pipeline нормализация произвольной таблицы в записи каталога.
// Таблица синонимов задается при создании и дальше неизменна.
type Pipeline struct {
	aliases *AliasMapping
}

// NewPipeline создает пайплайн с заданной таблицей синонимов.
// nil означает встроенную таблицу по умолчанию.
func NewPipeline(aliases *AliasMapping) *Pipeline {
	if aliases == nil {
		aliases = DefaultAliasMapping()
	}
	return &Pipeline{aliases: aliases}
}

// NormalizeForProduct прогоняет таблицу через все стадии:
// очистка заголовков -> синонимы -> коэрция типов -> валидация строк.
// Чистая функция без I/O; все отказы выражены отбрасыванием строк.
func (p *Pipeline) NormalizeForProduct(t *Table) *Table {
	t = CleanColumns(t)
	t = p.aliases.Apply(t)
	t = CoerceForProduct(t)
	t = ValidateRows(t)
	return t
}

// Records превращает валидированную таблицу в записи каталога.
// Quantity усекается до целого на этой границе; отсутствующая категория
// подставляется пустой строкой.
func Records(t *Table) []ProductRecord {
	records := make([]ProductRecord, 0, t.RowCount())
	for row := 0; row < t.RowCount(); row++ {
		sku, _ := t.Cell(FieldSKU, row).AsString()
		name, _ := t.Cell(FieldName, row).AsString()
		category, _ := t.Cell(FieldCategory, row).AsString()
		price, _ := t.Cell(FieldPrice, row).AsNumber()
		quantity, _ := t.Cell(FieldQuantity, row).AsNumber()
		txDate, _ := t.Cell(FieldTxDate, row).AsDate()

		records = append(records, ProductRecord{
			SKU:      sku,
			Name:     name,
			Category: category,
			Price:    price,
			Quantity: int(quantity), // truncation, not rounding
			TxDate:   txDate,
		})
	}
	return records
}
