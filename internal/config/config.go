package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config конфигурация сервера каталога
type Config struct {
	// Сервер
	Port string `json:"port"`

	// База каталога
	DatabasePath    string        `json:"database_path"`
	MaxOpenConns    int           `json:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`

	// Файлы
	UploadsDir string `json:"uploads_dir"`
	ExportsDir string `json:"exports_dir"`

	// Пайплайн
	ColumnAliasPath string `json:"column_alias_path"`

	// Лимиты загрузки
	UploadRateLimit float64 `json:"upload_rate_limit"`
	UploadRateBurst int     `json:"upload_rate_burst"`
}

// LoadConfig загружает конфигурацию из переменных окружения.
// .env в рабочей директории подхватывается, если он есть.
func LoadConfig() (*Config, error) {
	// best-effort: отсутствие .env не ошибка
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		DatabasePath:    getEnv("DATABASE_PATH", "catalog.db"),
		MaxOpenConns:    getEnvInt("MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvInt("MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getEnvDuration("CONN_MAX_LIFETIME", 5*time.Minute),
		UploadsDir:      getEnv("UPLOADS_DIR", "data/uploads"),
		ExportsDir:      getEnv("EXPORTS_DIR", "data/exports"),
		ColumnAliasPath: getEnv("COLUMN_ALIAS_PATH", ""),
		UploadRateLimit: getEnvFloat("UPLOAD_RATE_LIMIT", 2),
		UploadRateBurst: getEnvInt("UPLOAD_RATE_BURST", 5),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("port must be numeric, got %q", c.Port)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("max idle connections must not be negative, got %d", c.MaxIdleConns)
	}
	if c.UploadRateLimit <= 0 {
		return fmt.Errorf("upload rate limit must be positive, got %f", c.UploadRateLimit)
	}
	if c.UploadRateBurst <= 0 {
		return fmt.Errorf("upload rate burst must be positive, got %d", c.UploadRateBurst)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
