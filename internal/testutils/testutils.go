package testutils

import (
	"context"
	"io"
	"time"

	"github.com/dalfonso89/shop-mock-api/internal/config"
	"github.com/dalfonso89/shop-mock-api/internal/logger"
)

// MockLogger creates a debug-level logger that discards its output
func MockLogger() logger.Logger {
	return logger.NewWithOutput("debug", io.Discard)
}

// MockConfig creates a configuration with no simulated latency so tests run fast
func MockConfig() *config.Config {
	return &config.Config{
		Port:            "0",
		LogLevel:        "debug",
		PublicDir:       "public",
		KeepAliveDelay:  config.DelayRange{},
		PurchaseDelay:   config.DelayRange{},
		ShutdownTimeout: 5 * time.Second,
	}
}

// DefaultLatencyConfig returns MockConfig with the production delay ranges
func DefaultLatencyConfig() *config.Config {
	cfg := MockConfig()
	cfg.KeepAliveDelay = config.DelayRange{Min: 0, Max: 150 * time.Millisecond}
	cfg.PurchaseDelay = config.DelayRange{Min: 150 * time.Millisecond, Max: 500 * time.Millisecond}
	return cfg
}

// MockContextWithTimeout creates a context with timeout for testing
func MockContextWithTimeout(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
