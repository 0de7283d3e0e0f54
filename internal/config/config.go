// Package config loads service configuration from environment variables,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults used when the corresponding environment variable is unset.
const (
	DefaultPort        = "8080"
	DefaultHost        = "0.0.0.0"
	DefaultDBPath      = "documents.db"
	DefaultTopFrequent = 5
)

// Config holds all configuration for the service.
type Config struct {
	Port   string `json:"port"`
	Host   string `json:"host"`
	DBPath string `json:"db_path"`

	// TopFrequentWords is how many repeated words the highlighter marks.
	TopFrequentWords int `json:"top_frequent_words"`
}

// Load reads configuration from environment variables and the .env file
// if one exists. All values have defaults, so a zero-config start works.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnvOrDefault("PORT", DefaultPort),
		Host:             getEnvOrDefault("HOST", DefaultHost),
		DBPath:           getEnvOrDefault("DB_PATH", DefaultDBPath),
		TopFrequentWords: DefaultTopFrequent,
	}

	if raw := os.Getenv("TOP_FREQUENT_WORDS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid TOP_FREQUENT_WORDS %q: must be a positive integer", raw)
		}
		cfg.TopFrequentWords = n
	}

	return cfg, nil
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
