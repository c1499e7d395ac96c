package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port       string
	DBURL      string
	CORSOrigin string
	GinMode    string

	LogLevel     string
	LogFormat    string
	LogFile      string
	LogFileMaxMB int
}

// Load reads the process environment, after merging in a .env file when
// one is present in the working directory.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found. Using system environment variables.")
	}

	dbURL, err := mustEnv("DB_URL")
	if err != nil {
		return nil, err
	}

	maxMB, err := strconv.Atoi(getEnv("LOG_FILE_MAX_SIZE_MB", "100"))
	if err != nil || maxMB <= 0 {
		return nil, fmt.Errorf("invalid LOG_FILE_MAX_SIZE_MB: %q", os.Getenv("LOG_FILE_MAX_SIZE_MB"))
	}

	return &Config{
		Port:       getEnv("PORT", "8080"),
		DBURL:      dbURL,
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
		GinMode:    getEnv("GIN_MODE", "debug"),

		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "console"),
		LogFile:      getEnv("LOG_FILE", ""),
		LogFileMaxMB: maxMB,
	}, nil
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("missing required environment variable: %s", key)
	}
	return v, nil
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
