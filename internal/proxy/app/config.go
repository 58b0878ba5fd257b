package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AmadeusKey     string // Required: Amadeus API client identifier
	AmadeusSecret  string // Required: Amadeus API client secret
	AmadeusBaseURL string // Optional: upstream base URL (default: Amadeus test environment)

	CORSAllowedOrigins []string // Optional: allowed CORS origins (default: all)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 5000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		AmadeusKey:     os.Getenv("AMADEUS_KEY"),
		AmadeusSecret:  os.Getenv("AMADEUS_SECRET"),
		AmadeusBaseURL: getEnvOrDefault("AMADEUS_BASE_URL", ""),

		CORSAllowedOrigins: splitCommaList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 5000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}

func splitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
