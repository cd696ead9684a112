package db

import (
	"os"
	"strconv"
)

type PostgresConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

func LoadPostgresConfig() (PostgresConfig, error) {
	port, err := strconv.Atoi(os.Getenv("DB_PORT"))
	if err != nil {
		port = 5432
	}

	sslMode := os.Getenv("DB_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	return PostgresConfig{
		Host:         os.Getenv("DB_HOST"),
		Port:         port,
		User:         os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
		SSLMode:      sslMode,
		MaxOpenConns: envIntDefault("DB_MAX_OPEN_CONNS", 20),
		MaxIdleConns: envIntDefault("DB_MAX_IDLE_CONNS", 10),
	}, nil
}

func envIntDefault(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
