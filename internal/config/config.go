// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Storage     StorageConfig
	Seed        SeedConfig
	Reference   ReferenceConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type StorageConfig struct {
	// Path of the local database file mirroring in-memory state.
	Path string
}

type SeedConfig struct {
	// Dir holds balls-seed.json, rg-seed.json and reference-data.json.
	Dir string
}

type ReferenceConfig struct {
	// CacheTTLHours bounds how long the vocabulary snapshot stays cached.
	CacheTTLHours int
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Storage: StorageConfig{
			Path: getEnv("STORAGE_PATH", "data/npls.db"),
		},
		Seed: SeedConfig{
			Dir: getEnv("SEED_DIR", "assets"),
		},
		Reference: ReferenceConfig{
			CacheTTLHours: getEnvAsInt("REFERENCE_CACHE_TTL_HOURS", 24),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Storage.Path == "" {
		return fmt.Errorf("storage path must not be empty")
	}
	if c.Reference.CacheTTLHours < 1 {
		return fmt.Errorf("reference cache TTL must be at least 1 hour")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
