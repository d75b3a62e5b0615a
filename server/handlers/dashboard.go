package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalogserver/server/services"
)

// DashboardHandler обработчик сводных показателей каталога
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler создает обработчик дашборда
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// HandleGetStats возвращает KPI каталога и топ категорий по выручке.
//
// @Summary Catalog dashboard stats
// @Description Returns product count, total quantity, average price and top 5 categories by revenue
// @Tags dashboard
// @Produce json
// @Success 200 {object} services.DashboardStats
// @Failure 500 {object} map[string]string
// @Router /dashboard/stats [get]
func (h *DashboardHandler) HandleGetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
