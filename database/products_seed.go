package database

import (
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// Категории для демо-данных
var seedCategories = []string{
	"Electronics", "Office", "Kitchen", "Outdoor", "Toys", "Tools", "",
}

// SeedDemoProducts наполняет каталог демо-данными для разработки и
// нагрузочных прогонов. Детерминированно при фиксированном seed.
func (db *ProductsDB) SeedDemoProducts(count int, seed uint64) (int, error) {
	faker := gofakeit.New(int64(seed))

	inserted := 0
	for i := 0; i < count; i++ {
		p := Product{
			SKU:      fmt.Sprintf("%s-%04d", faker.LetterN(3), i),
			Name:     faker.ProductName(),
			Category: seedCategories[faker.Number(0, len(seedCategories)-1)],
			Price:    faker.Price(0.5, 2500),
			Quantity: faker.Number(0, 500),
			TxDate:   faker.DateRange(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)),
		}

		if err := db.UpsertProduct(p); err != nil {
			log.Printf("Warning: failed to seed product %s: %v", p.SKU, err)
			continue
		}
		inserted++
	}

	return inserted, nil
}
