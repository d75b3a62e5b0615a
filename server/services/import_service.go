package services

import (
	"log"

	"catalogserver/database"
	"catalogserver/importer"
	"catalogserver/server/monitoring"
	"catalogserver/tabular"
)

// ProductUpserter узкий интерфейс хранилища для импорта.
// Используем интерфейс вместо конкретного типа для тестируемости.
type ProductUpserter interface {
	UpsertProduct(p database.Product) error
}

// ImportService прогоняет загруженный файл через пайплайн нормализации
// и вливает результат в каталог
type ImportService struct {
	store    ProductUpserter
	pipeline *tabular.Pipeline
}

// NewImportService создает сервис импорта. aliases == nil означает
// встроенную таблицу синонимов.
func NewImportService(store ProductUpserter, aliases *tabular.AliasMapping) *ImportService {
	return &ImportService{
		store:    store,
		pipeline: tabular.NewPipeline(aliases),
	}
}

// ImportFile читает файл (CSV или Excel), нормализует и вливает в
// каталог. Возвращает число успешно записанных строк. Структурные
// ошибки чтения фатальны; построчные отказы записи — нет.
func (s *ImportService) ImportFile(filePath, sheet string) (int, error) {
	table, err := importer.ReadAny(filePath, sheet)
	if err != nil {
		return 0, err
	}
	return s.ImportTable(table), nil
}

// ImportTable нормализует таблицу и вливает записи в каталог по одной.
// Upsert каждой строки — независимая операция: отказ одной строки не
// откатывает предыдущие (best-effort, не all-or-nothing).
func (s *ImportService) ImportTable(table *tabular.Table) int {
	rawRows := table.RowCount()
	monitoring.UploadsTotal.Inc()
	monitoring.RowsProcessed.Add(float64(rawRows))

	normalized := s.pipeline.NormalizeForProduct(table)
	records := tabular.Records(normalized)
	monitoring.RowsDropped.Add(float64(rawRows - len(records)))

	written := 0
	for _, r := range records {
		p := database.Product{
			SKU:      r.SKU,
			Name:     r.Name,
			Category: r.Category,
			Price:    r.Price,
			Quantity: r.Quantity,
			TxDate:   r.TxDate,
		}
		if err := s.store.UpsertProduct(p); err != nil {
			monitoring.UpsertFailures.Inc()
			log.Printf("Warning: failed to upsert product %s: %v", r.SKU, err)
			continue
		}
		written++
	}

	monitoring.RowsWritten.Add(float64(written))
	return written
}
