package helper

import (
	"os"

	"github.com/macromatch/backend/internal/database"
)

// AppConfig is the full environment-driven configuration.
type AppConfig struct {
	Neo4j       database.Config
	Port        string
	LogMode     string // "dev" or "prod"
	SeedCatalog bool
}

// LoadConfigFromEnv loads all configuration from environment variables.
func LoadConfigFromEnv() AppConfig {
	return AppConfig{
		Neo4j: database.Config{
			URI:      getEnvOrDefault("NEO4J_URI", ""),
			Username: getEnvOrDefault("NEO4J_USERNAME", "neo4j"),
			Password: getEnvOrDefault("NEO4J_PASSWORD", ""),
			Database: getEnvOrDefault("NEO4J_DATABASE", "neo4j"),
		},
		Port:        getEnvOrDefault("APP_PORT", "8080"),
		LogMode:     getEnvOrDefault("LOG_MODE", "dev"),
		SeedCatalog: getEnvOrDefault("SEED_CATALOG", "true") == "true",
	}
}

// getEnvOrDefault returns environment variable value or default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
