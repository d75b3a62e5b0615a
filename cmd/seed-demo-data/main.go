// Наполняет базу каталога демо-данными для разработки и ручной проверки
// дашборда и экспорта.
package main

import (
	"flag"
	"log"

	"catalogserver/database"
)

func main() {
	dbPath := flag.String("db", "catalog.db", "path to the catalog database")
	count := flag.Int("count", 500, "number of demo products to generate")
	seed := flag.Uint64("seed", 42, "random seed (deterministic output for a fixed seed)")
	flag.Parse()

	db, err := database.NewProductsDB(*dbPath, database.DefaultDBConfig())
	if err != nil {
		log.Fatalf("Failed to open catalog database: %v", err)
	}
	defer db.Close()

	inserted, err := db.SeedDemoProducts(*count, *seed)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d demo products into %s", inserted, *dbPath)
}
