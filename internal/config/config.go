package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DelayRange is a half-open [Min, Max) window for simulated processing latency
type DelayRange struct {
	Min time.Duration
	Max time.Duration
}

// Config holds all configuration for the application
type Config struct {
	Port      string
	LogLevel  string
	PublicDir string

	// Simulated latency
	KeepAliveDelay DelayRange
	PurchaseDelay  DelayRange

	ShutdownTimeout time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	keepAliveDelay, err := loadDelayRange("KEEP_ALIVE", 0, 150)
	if err != nil {
		return nil, err
	}
	purchaseDelay, err := loadDelayRange("PURCHASE", 150, 500)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:      getEnv("PORT", "3000"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		PublicDir: getEnv("PUBLIC_DIR", "public"),

		KeepAliveDelay: keepAliveDelay,
		PurchaseDelay:  purchaseDelay,

		ShutdownTimeout: time.Duration(atoiOrDefault(getEnv("SHUTDOWN_TIMEOUT_SECONDS", "30"), 30)) * time.Second,
	}, nil
}

// loadDelayRange reads <PREFIX>_MIN_DELAY_MS and <PREFIX>_MAX_DELAY_MS
func loadDelayRange(prefix string, defaultMinMs, defaultMaxMs int) (DelayRange, error) {
	minMs := atoiOrDefault(getEnv(prefix+"_MIN_DELAY_MS", ""), defaultMinMs)
	maxMs := atoiOrDefault(getEnv(prefix+"_MAX_DELAY_MS", ""), defaultMaxMs)

	if minMs < 0 || maxMs < minMs {
		return DelayRange{}, fmt.Errorf("invalid %s delay range [%d, %d) ms", prefix, minMs, maxMs)
	}

	return DelayRange{
		Min: time.Duration(minMs) * time.Millisecond,
		Max: time.Duration(maxMs) * time.Millisecond,
	}, nil
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func atoiOrDefault(s string, fallback int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return i
}
