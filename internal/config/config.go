package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DatabasePostgres = "postgres"
	DatabaseSQLite   = "sqlite"
)

type Config struct {
	Port            string
	Environment     string // ENV: production, development, etc.
	DatabaseType    string // postgres or sqlite
	DatabaseURL     string
	RedisURI        string // optional; enables the Redis rate limiter
	RateLimitMax    int
	RateLimitWindow time.Duration
	AllowedOrigins  []string // CORS; "*" allows any origin
	LogLevel        string
	LogFile         string // optional; rotated by lumberjack
	ShutdownTimeout time.Duration
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))

	dbType := strings.ToLower(strings.TrimSpace(getEnv("DATABASE_TYPE", DatabaseSQLite)))
	dbURL := getEnv("DATABASE_URL", "")
	if dbURL == "" && dbType == DatabaseSQLite {
		dbURL = "file:todak.db?_pragma=busy_timeout(5000)&_time_format=sqlite"
	}

	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     env,
		DatabaseType:    dbType,
		DatabaseURL:     dbURL,
		RedisURI:        getEnv("REDIS_URI", ""),
		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 120),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		AllowedOrigins:  allowedOrigins,
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFile:         getEnv("LOG_FILE", ""),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.DatabaseType {
	case DatabasePostgres, DatabaseSQLite:
	default:
		return fmt.Errorf("unsupported DATABASE_TYPE %q (use postgres or sqlite)", c.DatabaseType)
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.RateLimitMax <= 0 {
		return errors.New("RATE_LIMIT_MAX must be positive")
	}
	if c.RateLimitWindow <= 0 {
		return errors.New("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return strings.ToLower(strings.TrimSpace(c.Environment)) == "production"
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
