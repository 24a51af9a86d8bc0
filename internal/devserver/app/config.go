package app

import (
	"os"
	"strconv"
	"time"

	"github.com/fractalglobal/fgc/internal/devserver/service"
	"github.com/fractalglobal/fgc/pkg/fractalsdk"
)

type Config struct {
	Addr           string // HTTP listen address (default: :8080)
	Issuer         string // Issuer claim of every token (default: fractal-devserver)
	DatabaseFile   string // SQLite database file, or ":memory:" (default: fractal.db)
	SigningKeyFile string // Ed25519 PKCS8 PEM; created when missing, ephemeral when empty
	Pepper         string // Appended to passwords before hashing

	InitialBalance fractalsdk.Amount // Credited to new accounts (default: 100 credits)
	AccessTTL      time.Duration     // Token lifetime (default: 1h)
	RememberTTL    time.Duration     // Token lifetime for remember_me logins (default: 30 days)
	EmailKeyTTL    time.Duration     // Confirmation and reset key lifetime (default: 24h)

	// Pinned bootstrap credentials. Empty values are generated on first start.
	AdminClient  service.BootstrapClient
	PublicClient service.BootstrapClient

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired key cleanup interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		Addr:           getEnvOrDefault("FRACTAL_ADDR", ":8080"),
		Issuer:         getEnvOrDefault("FRACTAL_ISSUER", "fractal-devserver"),
		DatabaseFile:   getEnvOrDefault("FRACTAL_DATABASE_FILE", "fractal.db"),
		SigningKeyFile: os.Getenv("FRACTAL_SIGNING_KEY_FILE"),
		Pepper:         os.Getenv("FRACTAL_PEPPER"),

		InitialBalance: fractalsdk.Credits(int64(getEnvIntOrDefault("FRACTAL_INITIAL_BALANCE", 100))),
		AccessTTL:      getEnvDurationOrDefault("FRACTAL_ACCESS_TTL", time.Hour),
		RememberTTL:    getEnvDurationOrDefault("FRACTAL_REMEMBER_TTL", 30*24*time.Hour),
		EmailKeyTTL:    getEnvDurationOrDefault("FRACTAL_EMAIL_KEY_TTL", 24*time.Hour),

		AdminClient: service.BootstrapClient{
			ID:     os.Getenv("FRACTAL_ADMIN_APP_ID"),
			Secret: os.Getenv("FRACTAL_ADMIN_SECRET"),
		},
		PublicClient: service.BootstrapClient{
			ID:     os.Getenv("FRACTAL_PUBLIC_APP_ID"),
			Secret: os.Getenv("FRACTAL_PUBLIC_SECRET"),
		},

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", time.Hour),
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

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
