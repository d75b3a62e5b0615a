package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"catalogserver/database"
	"catalogserver/server/services"
)

// Принимаемые расширения загружаемых файлов
var allowedUploadExts = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xls":  true,
}

// ProductsHandler обработчики маршрутов каталога продуктов
type ProductsHandler struct {
	importService *services.ImportService
	exportService *services.ExportService
	store         *database.ProductsDB
	uploadsDir    string
}

// NewProductsHandler создает обработчик каталога
func NewProductsHandler(
	importService *services.ImportService,
	exportService *services.ExportService,
	store *database.ProductsDB,
	uploadsDir string,
) *ProductsHandler {
	return &ProductsHandler{
		importService: importService,
		exportService: exportService,
		store:         store,
		uploadsDir:    uploadsDir,
	}
}

// HandleUpload принимает табличный файл и вливает его в каталог.
//
// @Summary Upload a product table
// @Description Accepts a CSV or Excel file, normalizes it and upserts rows into the catalog keyed by SKU
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or Excel file"
// @Param sheet formData string false "Sheet name or index (Excel only)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /products/upload [post]
func (h *ProductsHandler) HandleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing form field 'file'"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedUploadExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("unsupported file extension %q, expected .csv, .xlsx or .xls", ext),
		})
		return
	}

	if err := os.MkdirAll(h.uploadsDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to prepare uploads directory"})
		return
	}

	// Сохраняем под оригинальным именем, как в веб-форме
	savedPath := filepath.Join(h.uploadsDir, filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, savedPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save uploaded file"})
		return
	}

	sheet := c.PostForm("sheet")

	written, err := h.importService.ImportFile(savedPath, sheet)
	if err != nil {
		// Структурная ошибка файла — весь вызов фатален, частичной обработки нет
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Uploaded: %d rows", written),
		"written": written,
	})
}

// HandleList возвращает продукты с фильтрами по дате и категории.
//
// @Summary List catalog products
// @Description Returns products filtered by inclusive date range and case-insensitive category substring
// @Tags products
// @Produce json
// @Param date_from query string false "Inclusive lower bound, YYYY-MM-DD"
// @Param date_to query string false "Inclusive upper bound, YYYY-MM-DD"
// @Param category query string false "Category substring"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /products [get]
func (h *ProductsHandler) HandleList(c *gin.Context) {
	var filter database.ProductFilter

	if v := c.Query("date_from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_from must be YYYY-MM-DD"})
			return
		}
		filter.DateFrom = &t
	}
	if v := c.Query("date_to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_to must be YYYY-MM-DD"})
			return
		}
		filter.DateTo = &t
	}
	filter.Category = c.Query("category")

	products, err := h.store.QueryProducts(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":    len(products),
		"products": products,
	})
}

// HandleExport выгружает каталог в стилизованную книгу Excel.
//
// @Summary Export the catalog to Excel
// @Description Writes a styled workbook and returns it as an attachment
// @Tags products
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} map[string]string
// @Router /products/export [get]
func (h *ProductsHandler) HandleExport(c *gin.Context) {
	path, err := h.exportService.ExportCatalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.FileAttachment(path, filepath.Base(path))
}
