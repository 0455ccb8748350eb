package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, the local store location, and Shopify client tuning.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	STORE_PATH=./data/companion.db
//	SHOPIFY_API_VERSION=2024-07
//	SHOPIFY_TIMEOUT_MS=12000
//	CACHE_TTL_MS=120000
type Config struct {
	Server  ServerConfig  // HTTP server configuration
	Store   StoreConfig   // Embedded key/value store settings
	Shopify ShopifyConfig // Shopify Admin API client settings
	Cache   CacheConfig   // Result cache tuning
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// StoreConfig defines the location of the embedded BoltDB file that backs
// persisted settings and the sales result cache.
type StoreConfig struct {
	Path string
}

// ShopifyConfig defines Shopify Admin GraphQL client tuning.
//
// Fields:
//   - APIVersion: Admin API version segment used in the endpoint URL (e.g., "2024-07").
//   - Timeout: hard per-request budget; a request past it surfaces as a network error.
type ShopifyConfig struct {
	APIVersion string
	Timeout    time.Duration
}

// CacheConfig defines the sales result cache tuning.
type CacheConfig struct {
	TTL time.Duration // entries older than this are treated as absent
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("STORE_PATH", "./data/companion.db")

	viper.SetDefault("SHOPIFY_API_VERSION", "2024-07")
	viper.SetDefault("SHOPIFY_TIMEOUT_MS", 12000)

	viper.SetDefault("CACHE_TTL_MS", 120000)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Store: StoreConfig{
			Path: viper.GetString("STORE_PATH"),
		},
		Shopify: ShopifyConfig{
			APIVersion: viper.GetString("SHOPIFY_API_VERSION"),
			Timeout:    time.Duration(viper.GetInt("SHOPIFY_TIMEOUT_MS")) * time.Millisecond,
		},
		Cache: CacheConfig{
			TTL: time.Duration(viper.GetInt("CACHE_TTL_MS")) * time.Millisecond,
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects missing ones in a slice.
//   - If any are missing, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Store.Path == "" {
		missing = append(missing, "STORE_PATH")
	}
	if AppConfig.Shopify.APIVersion == "" {
		missing = append(missing, "SHOPIFY_API_VERSION")
	}
	if AppConfig.Shopify.Timeout <= 0 {
		missing = append(missing, "SHOPIFY_TIMEOUT_MS")
	}
	if AppConfig.Cache.TTL <= 0 {
		missing = append(missing, "CACHE_TTL_MS")
	}

	if len(missing) > 0 {
		log.Fatalf("Missing required environment variables: %v\n", missing)
	}
}
