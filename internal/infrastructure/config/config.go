// Package config reads process configuration from the environment. A .env
// file in the working directory is loaded by the entrypoints before Load runs.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Port        string
	StoreDriver string
	LogLevel    string
	PhoneRegion string
	// ClientIDLocation is the zone whose calendar date prefixes client ids.
	ClientIDLocation *time.Location

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	ClientsTable     string
	ProductsTable    string
	VisitsTable      string
	LegacyLeadsTable string

	// RedisURL enables the product catalog cache when set.
	RedisURL        string
	CatalogCacheTTL time.Duration
}

// Load reads the environment, applying local-friendly defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:        getenvDefault("PORT", "8080"),
		StoreDriver: strings.ToLower(getenvDefault("STORE_DRIVER", StoreDriverDynamoDB)),
		LogLevel:    getenvDefault("LOG_LEVEL", "info"),
		PhoneRegion: strings.ToUpper(getenvDefault("PHONE_REGION", "AU")),

		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),

		ClientsTable:     getenvDefault("CLIENTS_TABLE", "clients"),
		ProductsTable:    getenvDefault("PRODUCTS_TABLE", "products"),
		VisitsTable:      getenvDefault("VISITS_TABLE", "visits"),
		LegacyLeadsTable: getenvDefault("LEGACY_LEADS_TABLE", "leads"),

		RedisURL: os.Getenv("REDIS_URL"),
	}

	ttl, err := time.ParseDuration(getenvDefault("CATALOG_CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid CATALOG_CACHE_TTL: %w", err)
	}
	cfg.CatalogCacheTTL = ttl

	loc, err := time.LoadLocation(getenvDefault("CLIENT_ID_TIMEZONE", "Local"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid CLIENT_ID_TIMEZONE: %w", err)
	}
	cfg.ClientIDLocation = loc

	switch cfg.StoreDriver {
	case StoreDriverDynamoDB, StoreDriverMemory:
	default:
		return Config{}, fmt.Errorf("invalid STORE_DRIVER %q (want %s or %s)", cfg.StoreDriver, StoreDriverDynamoDB, StoreDriverMemory)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
