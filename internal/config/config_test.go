package config

import (
	"testing"
	"time"
)

// TestLoadConfig_Defaults значения по умолчанию без окружения
func TestLoadConfig_Defaults(t *testing.T) {
	// Изолируемся от окружения машины
	for _, key := range []string{"PORT", "DATABASE_PATH", "CONN_MAX_LIFETIME", "UPLOADS_DIR", "EXPORTS_DIR"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DatabasePath != "catalog.db" {
		t.Errorf("DatabasePath = %q", cfg.DatabasePath)
	}
	if cfg.ConnMaxLifetime != 5*time.Minute {
		t.Errorf("ConnMaxLifetime = %v", cfg.ConnMaxLifetime)
	}
	if cfg.UploadsDir == "" || cfg.ExportsDir == "" {
		t.Error("upload/export dirs must have defaults")
	}
}

// TestLoadConfig_Env переопределение окружением
func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_PATH", "/tmp/test.db")
	t.Setenv("MAX_OPEN_CONNS", "25")
	t.Setenv("CONN_MAX_LIFETIME", "1m")
	t.Setenv("UPLOAD_RATE_LIMIT", "0.5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.DatabasePath != "/tmp/test.db" {
		t.Errorf("DatabasePath = %q", cfg.DatabasePath)
	}
	if cfg.MaxOpenConns != 25 {
		t.Errorf("MaxOpenConns = %d, want 25", cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime != time.Minute {
		t.Errorf("ConnMaxLifetime = %v, want 1m", cfg.ConnMaxLifetime)
	}
	if cfg.UploadRateLimit != 0.5 {
		t.Errorf("UploadRateLimit = %v, want 0.5", cfg.UploadRateLimit)
	}
}

// TestValidate отбраковка несогласованной конфигурации
func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:            "8080",
			DatabasePath:    "catalog.db",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			UploadRateLimit: 2,
			UploadRateBurst: 5,
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Port = "" }},
		{"non-numeric port", func(c *Config) { c.Port = "abc" }},
		{"empty db path", func(c *Config) { c.DatabasePath = "" }},
		{"zero open conns", func(c *Config) { c.MaxOpenConns = 0 }},
		{"negative idle conns", func(c *Config) { c.MaxIdleConns = -1 }},
		{"zero rate limit", func(c *Config) { c.UploadRateLimit = 0 }},
		{"zero burst", func(c *Config) { c.UploadRateBurst = 0 }},
	}

	for _, c := range cases {
		cfg := base()
		c.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate() should fail", c.name)
		}
	}
}
