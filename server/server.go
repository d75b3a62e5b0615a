package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"catalogserver/database"
	"catalogserver/internal/config"
	"catalogserver/server/handlers"
	"catalogserver/server/middleware"
	"catalogserver/server/services"
	"catalogserver/tabular"
)

// Server HTTP сервер каталога продуктов
type Server struct {
	cfg        *config.Config
	db         *database.ProductsDB
	httpServer *http.Server
}

// NewServer создает сервер поверх открытой базы каталога
func NewServer(cfg *config.Config, db *database.ProductsDB) *Server {
	return &Server{cfg: cfg, db: db}
}

// buildRouter собирает Gin роутер: middleware, маршруты API, Swagger и метрики
func (s *Server) buildRouter() (*gin.Engine, error) {
	if ginMode := os.Getenv("GIN_MODE"); ginMode == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinGzipMiddleware())
	router.Use(middleware.GinLoggerMiddleware())
	router.Use(gin.Recovery())

	// Таблица синонимов колонок: файл переопределяет встроенную
	aliases := tabular.DefaultAliasMapping()
	if s.cfg.ColumnAliasPath != "" {
		loaded, err := tabular.LoadAliasMapping(s.cfg.ColumnAliasPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load column alias mapping: %w", err)
		}
		aliases = loaded
		log.Printf("Loaded column alias mapping from %s (%d entries)", s.cfg.ColumnAliasPath, len(aliases.Entries()))
	}

	importService := services.NewImportService(s.db, aliases)
	exportService := services.NewExportService(s.db, s.cfg.ExportsDir)
	dashboardService := services.NewDashboardService(s.db)

	productsHandler := handlers.NewProductsHandler(importService, exportService, s.db, s.cfg.UploadsDir)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	handlers.RegisterSwaggerRoutes(router, "localhost:"+s.cfg.Port)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "catalog-server",
			"time":    time.Now().Format(time.RFC3339),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		productsAPI := api.Group("/products")
		{
			productsAPI.POST("/upload",
				middleware.GinRateLimitMiddleware(s.cfg.UploadRateLimit, s.cfg.UploadRateBurst),
				productsHandler.HandleUpload)
			productsAPI.GET("", productsHandler.HandleList)
			productsAPI.GET("/export", productsHandler.HandleExport)
		}

		api.GET("/dashboard/stats", dashboardHandler.HandleGetStats)
	}

	return router, nil
}

// Start запускает HTTP сервер и блокируется до его остановки
func (s *Server) Start() error {
	router, err := s.buildRouter()
	if err != nil {
		return err
	}

	s.httpServer = &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	log.Printf("Catalog server listening on :%s", s.cfg.Port)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown останавливает сервер gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	log.Println("Initiating graceful shutdown...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	log.Println("Graceful shutdown completed")
	return nil
}
