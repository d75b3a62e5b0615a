package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DBConfig конфигурация пула соединений с БД
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultDBConfig возвращает настройки пула по умолчанию
func DefaultDBConfig() DBConfig {
	return DBConfig{
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
	}
}

// Product запись каталога. SKU — уникальный бизнес-ключ; повторная
// запись с тем же SKU полностью замещает остальные поля.
type Product struct {
	SKU      string    `json:"sku"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Price    float64   `json:"price"`
	Quantity int       `json:"quantity"`
	TxDate   time.Time `json:"tx_date"`
}

// ProductsDB обертка для работы с базой каталога продуктов
type ProductsDB struct {
	conn *sql.DB
}

// Даты храним как TEXT в ISO-формате, сравнение лексикографическое
const txDateLayout = "2006-01-02"

// NewProductsDB открывает (или создает) базу каталога и применяет схему
func NewProductsDB(dbPath string, config DBConfig) (*ProductsDB, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(config.MaxOpenConns)
	conn.SetMaxIdleConns(config.MaxIdleConns)
	conn.SetConnMaxLifetime(config.ConnMaxLifetime)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &ProductsDB{conn: conn}
	if err := db.createSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

// createSchema создает таблицу каталога и индексы, если их нет
func (db *ProductsDB) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			sku TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			price REAL NOT NULL,
			quantity INTEGER NOT NULL,
			tx_date TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_tx_date ON products(tx_date)`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}
	return nil
}

// Close закрывает соединение с базой
func (db *ProductsDB) Close() error {
	return db.conn.Close()
}

// UpsertProduct вставляет или полностью замещает запись по SKU.
// Атомарно для одной записи; транзакций между записями нет.
func (db *ProductsDB) UpsertProduct(p Product) error {
	if p.SKU == "" {
		return fmt.Errorf("product SKU must not be empty")
	}

	_, err := db.conn.Exec(`
		INSERT INTO products (sku, name, category, price, quantity, tx_date, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, datetime('now'))
		ON CONFLICT(sku) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			price = excluded.price,
			quantity = excluded.quantity,
			tx_date = excluded.tx_date,
			updated_at = excluded.updated_at
	`, p.SKU, p.Name, p.Category, p.Price, p.Quantity, p.TxDate.Format(txDateLayout))
	if err != nil {
		return fmt.Errorf("failed to upsert product %s: %w", p.SKU, err)
	}
	return nil
}

// ProductFilter фильтры списка продуктов. Границы дат включительные,
// категория ищется как подстрока без учета регистра.
type ProductFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Category string
}

// QueryProducts возвращает продукты по фильтру, новые даты первыми
func (db *ProductsDB) QueryProducts(filter ProductFilter) ([]Product, error) {
	query := `
		SELECT sku, name, category, price, quantity, tx_date
		FROM products
		WHERE 1=1
	`
	args := []interface{}{}

	if filter.DateFrom != nil {
		query += " AND tx_date >= ?"
		args = append(args, filter.DateFrom.Format(txDateLayout))
	}
	if filter.DateTo != nil {
		query += " AND tx_date <= ?"
		args = append(args, filter.DateTo.Format(txDateLayout))
	}
	if filter.Category != "" {
		query += " AND LOWER(category) LIKE '%' || LOWER(?) || '%'"
		args = append(args, filter.Category)
	}

	query += " ORDER BY tx_date DESC, rowid DESC"

	return db.scanProducts(query, args...)
}

// ExportProducts возвращает весь каталог в порядке экспорта: по дате, затем по SKU
func (db *ProductsDB) ExportProducts() ([]Product, error) {
	return db.scanProducts(`
		SELECT sku, name, category, price, quantity, tx_date
		FROM products
		ORDER BY tx_date ASC, sku ASC
	`)
}

func (db *ProductsDB) scanProducts(query string, args ...interface{}) ([]Product, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var p Product
		var txDate string
		if err := rows.Scan(&p.SKU, &p.Name, &p.Category, &p.Price, &p.Quantity, &txDate); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		parsed, err := time.Parse(txDateLayout, txDate)
		if err != nil {
			return nil, fmt.Errorf("invalid tx_date %q for product %s: %w", txDate, p.SKU, err)
		}
		p.TxDate = parsed
		products = append(products, p)
	}
	return products, rows.Err()
}

// CatalogStats сводные показатели каталога для дашборда
type CatalogStats struct {
	Products      int     `json:"products"`
	TotalQuantity int     `json:"total_quantity"`
	AvgPrice      float64 `json:"avg_price"`
}

// Aggregate возвращает количество записей, суммарный остаток и среднюю цену
func (db *ProductsDB) Aggregate() (CatalogStats, error) {
	var stats CatalogStats
	err := db.conn.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(quantity), 0),
		       COALESCE(AVG(price), 0.0)
		FROM products
	`).Scan(&stats.Products, &stats.TotalQuantity, &stats.AvgPrice)
	if err != nil {
		return CatalogStats{}, fmt.Errorf("failed to aggregate catalog: %w", err)
	}
	return stats, nil
}

// CategoryRevenue выручка и число позиций по категории
type CategoryRevenue struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
	Items    int     `json:"items"`
}

// AggregateByCategory возвращает топ-5 категорий по выручке
// (price*quantity) по убыванию
func (db *ProductsDB) AggregateByCategory() ([]CategoryRevenue, error) {
	rows, err := db.conn.Query(`
		SELECT category,
		       COALESCE(SUM(price * quantity), 0.0) AS revenue,
		       COUNT(*) AS items
		FROM products
		GROUP BY category
		ORDER BY revenue DESC
		LIMIT 5
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by category: %w", err)
	}
	defer rows.Close()

	result := []CategoryRevenue{}
	for rows.Next() {
		var cr CategoryRevenue
		if err := rows.Scan(&cr.Category, &cr.Revenue, &cr.Items); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		result = append(result, cr)
	}
	return result, rows.Err()
}
