package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string

	// BackendURL is the base URL of the ASTS backend, e.g. http://localhost:8080/asts.
	BackendURL     string
	BackendTimeout time.Duration

	// DatabaseURL enables the submission log when set.
	DatabaseURL string
	MaxDBConns  int32
	// RedisURL enables the query cache, the submission queue and timetable events when set.
	RedisURL string

	TimetableCacheTTL     time.Duration
	GenerateRatePerMinute int
	YearWindow            int
	// AllowedOrigins controls HTTP CORS and WebSocket origin validation.
	// Empty slice means all origins are permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:            getEnv("SERVER_PORT", "3000"),
		GinMode:               getEnv("GIN_MODE", "debug"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "pretty"),
		BackendURL:            strings.TrimRight(getEnv("ASTS_BACKEND_URL", "http://localhost:8080/asts"), "/"),
		BackendTimeout:        time.Duration(getEnvInt("ASTS_BACKEND_TIMEOUT_SECONDS", 30)) * time.Second,
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		MaxDBConns:            int32(getEnvInt("MAX_DB_CONNS", 4)),
		RedisURL:              os.Getenv("REDIS_URL"),
		TimetableCacheTTL:     time.Duration(getEnvInt("TIMETABLE_CACHE_TTL_SECONDS", 300)) * time.Second,
		GenerateRatePerMinute: getEnvInt("GENERATE_RATE_PER_MINUTE", 6),
		YearWindow:            getEnvInt("YEAR_WINDOW", 6),
		AllowedOrigins:        parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

// Years returns the academic years offered by the year pickers: YearWindow
// consecutive years starting the year before now.
func (c *Config) Years(now time.Time) []int {
	n := c.YearWindow
	if n <= 0 {
		n = 6
	}
	years := make([]int, n)
	for i := range years {
		years[i] = now.Year() - 1 + i
	}
	return years
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
