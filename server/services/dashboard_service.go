package services

import (
	"fmt"

	"catalogserver/database"
)

// CatalogAggregator интерфейс хранилища для сводных показателей
type CatalogAggregator interface {
	Aggregate() (database.CatalogStats, error)
	AggregateByCategory() ([]database.CategoryRevenue, error)
}

// DashboardStats сводка для дашборда: KPI плюс топ категорий по выручке
type DashboardStats struct {
	KPI           database.CatalogStats      `json:"kpi"`
	TopCategories []database.CategoryRevenue `json:"top_categories"`
}

// DashboardService собирает сводные показатели каталога
type DashboardService struct {
	store CatalogAggregator
}

// NewDashboardService создает сервис дашборда
func NewDashboardService(store CatalogAggregator) *DashboardService {
	return &DashboardService{store: store}
}

// GetStats возвращает KPI каталога и топ-5 категорий по выручке
func (s *DashboardService) GetStats() (DashboardStats, error) {
	kpi, err := s.store.Aggregate()
	if err != nil {
		return DashboardStats{}, fmt.Errorf("failed to aggregate KPI: %w", err)
	}

	topCategories, err := s.store.AggregateByCategory()
	if err != nil {
		return DashboardStats{}, fmt.Errorf("failed to aggregate categories: %w", err)
	}

	return DashboardStats{KPI: kpi, TopCategories: topCategories}, nil
}
