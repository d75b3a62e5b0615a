// @title Catalog Server API
// @version 1.0
// @description Product catalog ingest server: tabular upload normalization, catalog queries and styled Excel export.

// @host localhost:8080
// @BasePath /api
// @schemes http

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalogserver/database"
	"catalogserver/internal/config"
	"catalogserver/server"
)

func main() {
	log.Println("Starting catalog server...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dbConfig := database.DBConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}

	db, err := database.NewProductsDB(cfg.DatabasePath, dbConfig)
	if err != nil {
		log.Fatalf("Failed to open catalog database: %v", err)
	}
	defer db.Close()
	log.Printf("Using catalog database: %s", cfg.DatabasePath)

	srv := server.NewServer(cfg, db)

	// Graceful shutdown по SIGINT/SIGTERM
	done := make(chan struct{})
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
		close(done)
	}()

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	<-done
}
