package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port           string
	Env            string
	DatabaseDSN    string
	JWTSecret      string
	JWTExpiry      time.Duration
	CatalogBaseURL string
	CatalogAPIKey  string
	SearchPageSize int
	FeaturedCount  int
}

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/savorly?parseTime=true"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		JWTExpiry:      24 * time.Hour,
		CatalogBaseURL: getEnv("SPOONACULAR_BASE_URL", ""),
		CatalogAPIKey:  os.Getenv("SPOONACULAR_API_KEY"),
		SearchPageSize: getEnvInt("SEARCH_PAGE_SIZE", 20),
		FeaturedCount:  getEnvInt("FEATURED_COUNT", 6),
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	// A missing catalog key is surfaced at startup, not at the first
	// request that fails with a provider 401.
	if cfg.CatalogAPIKey == "" {
		slog.Warn("SPOONACULAR_API_KEY is not set — catalog requests will be rejected by the provider")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		slog.Warn("ignoring invalid integer environment variable", "key", key, "value", v)
	}
	return fallback
}
