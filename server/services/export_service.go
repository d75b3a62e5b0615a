package services

import (
	"fmt"

	"catalogserver/database"
	"catalogserver/exporter"
	"catalogserver/server/monitoring"
)

// ProductLister интерфейс хранилища для экспорта каталога
type ProductLister interface {
	ExportProducts() ([]database.Product, error)
}

// ExportService готовит стилизованные книги Excel из каталога
type ExportService struct {
	store ProductLister
	excel *exporter.ExcelExporter
}

// NewExportService создает сервис экспорта, пишущий в exportDir
func NewExportService(store ProductLister, exportDir string) *ExportService {
	return &ExportService{
		store: store,
		excel: exporter.NewExcelExporter(exportDir),
	}
}

// ExportCatalog выгружает весь каталог в новый файл и возвращает путь
func (s *ExportService) ExportCatalog() (string, error) {
	products, err := s.store.ExportProducts()
	if err != nil {
		return "", fmt.Errorf("failed to fetch products for export: %w", err)
	}

	path, err := s.excel.ExportProducts(products, "products_export")
	if err != nil {
		return "", err
	}

	monitoring.ExportsTotal.Inc()
	return path, nil
}
