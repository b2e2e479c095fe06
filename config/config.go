package config

import (
	"os"
	"strconv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBName     string
	DBPassword string

	ServerPort string
	MediaDir   string

	// PageSize controls how many properties one listing page returns.
	PageSize int

	// AutocompleteLimit caps location autocomplete results.
	AutocompleteLimit int
}

func LoadConfig() *Config {
	return &Config{
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "rentals"),
		DBName:            getEnv("DB_NAME", "rentals"),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		MediaDir:          getEnv("MEDIA_DIR", "media"),
		PageSize:          getEnvInt("PAGE_SIZE", 10),
		AutocompleteLimit: getEnvInt("AUTOCOMPLETE_LIMIT", 5),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
