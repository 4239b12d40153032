package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	AppEnv          string
	BaseURL         string
	LogLevel        string
	LogFile         string
	CacheBackend    string // memory | redis | off
	CacheTTLSeconds int
	CacheMaxSizeMB  int
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
}

func Load() *Config {
	_ = godotenv.Load() // Ignore error if .env not found (e.g. prod)

	return &Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     getEnv("DATABASE_URL", "file:links.db"),
		AppEnv:          getEnv("APP_ENV", "local"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         getEnv("LOG_FILE", ""),
		CacheBackend:    getEnv("CACHE_BACKEND", "memory"),
		CacheTTLSeconds: getEnvInt("CACHE_TTL_SECONDS", 300),
		CacheMaxSizeMB:  getEnvInt("CACHE_MAX_SIZE_MB", 64),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
