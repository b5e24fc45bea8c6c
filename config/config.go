package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
	DBPath   string

	// Catalog seed files, used only when the store is empty.
	CatalogWorkbook string
	CatalogZonesCSV string
	CatalogCropsCSV string
}

func (c AppConfig) Development() bool { return strings.EqualFold(c.Env, "development") }

// Load reads the environment, after applying the given .env files (or
// ./.env when none are given). Missing files are not an error.
func Load(files ...string) AppConfig {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// godotenv never overrides variables that are already set
		_ = godotenv.Load(f)
	}

	get := func(k, def string) string {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
		return def
	}
	return AppConfig{
		Port:            get("PORT", "8080"),
		Env:             get("APP_ENV", "development"),
		LogLevel:        get("LOG_LEVEL", "info"),
		DBPath:          get("DB_PATH", "vfarm.db"),
		CatalogWorkbook: get("CATALOG_WORKBOOK", ""),
		CatalogZonesCSV: get("CATALOG_ZONES_CSV", ""),
		CatalogCropsCSV: get("CATALOG_CROPS_CSV", ""),
	}
}
