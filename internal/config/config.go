package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the non-database settings for the storefront service.
// Database settings live in pkg/db.
type Config struct {
	Addr            string
	JWTSecret       string
	TokenTTL        time.Duration
	RateLimitRPS    int
	RateLimitBurst  int
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CatalogCacheTTL time.Duration
	LogLevel        string
}

func Load() Config {
	return Config{
		Addr:            envString("HTTP_ADDR", ":8080"),
		JWTSecret:       envString("JWT_SECRET", "dev-secret-do-not-use"),
		TokenTTL:        envDuration("TOKEN_TTL", 24*time.Hour),
		RateLimitRPS:    envInt("RATE_LIMIT_RPS", 20),
		RateLimitBurst:  envInt("RATE_LIMIT_BURST", 40),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         envInt("REDIS_DB", 0),
		CatalogCacheTTL: envDuration("CATALOG_CACHE_TTL", 30*time.Second),
		LogLevel:        envString("LOG_LEVEL", "info"),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
