package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultCatalogPath   = "data/people_index.json"
	defaultAliasPath     = "data/aliases.json"
	defaultDatabasePath  = "searches.db"
	defaultCardCacheDir  = "media_storage/share_cards"
	defaultCacheSeconds  = 300
	defaultTrackerQueue  = 1000
	defaultTrackerFlushS = 30
)

type Config struct {
	// catalog data sources
	CatalogPath string
	AliasPath   string

	// how long a loaded catalog snapshot is served before re-reading
	CatalogCacheTTL time.Duration

	// watch the catalog file and invalidate the cache on change
	WatchCatalog bool

	// database path (search tracking, reports)
	DatabasePath string

	// where rendered share cards are cached
	CardCachePath string

	// public site identity, used for share URLs and the subdomain redirect.
	// BaseDomain empty disables the redirect middleware.
	SiteURL    string
	BaseDomain string

	// bcrypt hash of the admin token; empty disables /api/admin endpoints
	AdminTokenHash string

	// search tracker settings
	TrackerQueueSize    int
	TrackerFlushSeconds int

	// CORS
	AllowedOrigins []string
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func getEnvBoolOrDefault(envVar string, defaultVal bool) bool {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Invalid %s '%s'. Using default %v. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func LoadConfig() (Config, error) {
	catalogPath, err := filepath.Abs(getEnvOrDefault("PEOPLE_INDEX_PATH", defaultCatalogPath))
	if err != nil {
		return Config{}, err
	}
	aliasPath, err := filepath.Abs(getEnvOrDefault("ALIAS_MAPPING_PATH", defaultAliasPath))
	if err != nil {
		return Config{}, err
	}
	cardCachePath, err := filepath.Abs(getEnvOrDefault("CARD_CACHE_PATH", defaultCardCacheDir))
	if err != nil {
		return Config{}, err
	}

	cacheSeconds := getEnvIntOrDefault("CATALOG_CACHE_TTL_SECONDS", defaultCacheSeconds)

	origins := strings.Split(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	cfg := Config{
		CatalogPath:         catalogPath,
		AliasPath:           aliasPath,
		CatalogCacheTTL:     time.Duration(cacheSeconds) * time.Second,
		WatchCatalog:        getEnvBoolOrDefault("WATCH_CATALOG", true),
		DatabasePath:        getEnvOrDefault("DATABASE_PATH", defaultDatabasePath),
		CardCachePath:       cardCachePath,
		SiteURL:             getEnvOrDefault("SITE_URL", "http://localhost:8080"),
		BaseDomain:          getEnvOrDefault("BASE_DOMAIN", ""),
		AdminTokenHash:      os.Getenv("ADMIN_TOKEN_HASH"),
		TrackerQueueSize:    getEnvIntOrDefault("TRACKER_QUEUE_SIZE", defaultTrackerQueue),
		TrackerFlushSeconds: getEnvIntOrDefault("TRACKER_FLUSH_SECONDS", defaultTrackerFlushS),
		AllowedOrigins:      origins,
	}

	return cfg, nil
}
