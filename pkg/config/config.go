package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	DirectoryAPI DirectoryAPIConfig
	Cache        CacheConfig
	Env          string
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins string
}

type DatabaseConfig struct {
	Path string
}

// DirectoryAPIConfig holds settings for the random-user API used to seed
// the directory. The seed parameter makes the upstream data set stable
// between runs.
type DirectoryAPIConfig struct {
	URL           string
	Seed          string
	Nationalities string
	BatchSize     int
}

type CacheConfig struct {
	TTLSeconds int
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			Mode:           getEnv("GIN_MODE", "release"),
			ReadTimeout:    getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:   getEnvAsInt("WRITE_TIMEOUT", 15),
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", ""),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./staffdir.db"),
		},
		DirectoryAPI: DirectoryAPIConfig{
			URL:           getEnv("RANDOM_USER_API_URL", "https://randomuser.me/api/"),
			Seed:          getEnv("RANDOM_USER_API_SEED", "default-seed"),
			Nationalities: getEnv("RANDOM_USER_API_NAT", "us,ca,gb,au"),
			BatchSize:     getEnvAsInt("SEED_BATCH_SIZE", 100),
		},
		Cache: CacheConfig{
			TTLSeconds: getEnvAsInt("CACHE_TTL_SECONDS", 300),
		},
		Env: getEnv("APP_ENV", "development"),
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
