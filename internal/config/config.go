package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port      int
	LogLevel  string
	LogFormat string

	// BaseServerURL is the origin that room links are shared under.
	BaseServerURL    string
	ResolverURL      string
	ResolverTimeout  time.Duration
	ResolverCacheTTL time.Duration

	StoreBackend string
	DatabaseURL  string
	RedisURL     string

	DefaultLocale string

	MessageRate  float64
	MessageBurst int
}

func Load() *Config {
	return &Config{
		Port:             getEnvInt("PORT", 8080),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		BaseServerURL:    getEnv("BASE_SERVER_URL", "https://kmeet.infomaniak.com"),
		ResolverURL:      getEnv("RESOLVER_URL", "https://api.infomaniak.com"),
		ResolverTimeout:  getEnvDuration("RESOLVER_TIMEOUT", 10*time.Second),
		ResolverCacheTTL: getEnvDuration("RESOLVER_CACHE_TTL", 10*time.Minute),
		StoreBackend:     getEnv("STORE_BACKEND", "memory"),
		DatabaseURL:      getEnv("DATABASE_URL", "postgres://localhost:5432/kmeet?sslmode=disable"),
		RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379/0"),
		DefaultLocale:    getEnv("DEFAULT_LOCALE", "en"),
		MessageRate:      getEnvFloat("MESSAGE_RATE", 20),
		MessageBurst:     getEnvInt("MESSAGE_BURST", 40),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
