package config

import (
	"os"
	"testing"
	"time"
)

var configKeys = []string{
	"PORT",
	"LOG_LEVEL",
	"PUBLIC_DIR",
	"KEEP_ALIVE_MIN_DELAY_MS",
	"KEEP_ALIVE_MAX_DELAY_MS",
	"PURCHASE_MIN_DELAY_MS",
	"PURCHASE_MAX_DELAY_MS",
	"SHUTDOWN_TIMEOUT_SECONDS",
}

// clearConfigEnv blanks every key Load reads; getEnv treats empty as unset.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config) bool
	}{
		{
			name:    "default configuration",
			envVars: map[string]string{},
			expected: func(cfg *Config) bool {
				return cfg.Port == "3000" &&
					cfg.LogLevel == "info" &&
					cfg.PublicDir == "public" &&
					cfg.KeepAliveDelay == DelayRange{Min: 0, Max: 150 * time.Millisecond} &&
					cfg.PurchaseDelay == DelayRange{Min: 150 * time.Millisecond, Max: 500 * time.Millisecond} &&
					cfg.ShutdownTimeout == 30*time.Second
			},
		},
		{
			name: "custom configuration",
			envVars: map[string]string{
				"PORT":                     "9090",
				"LOG_LEVEL":                "debug",
				"PUBLIC_DIR":               "/srv/www",
				"KEEP_ALIVE_MIN_DELAY_MS":  "5",
				"KEEP_ALIVE_MAX_DELAY_MS":  "10",
				"PURCHASE_MIN_DELAY_MS":    "0",
				"PURCHASE_MAX_DELAY_MS":    "0",
				"SHUTDOWN_TIMEOUT_SECONDS": "5",
			},
			expected: func(cfg *Config) bool {
				return cfg.Port == "9090" &&
					cfg.LogLevel == "debug" &&
					cfg.PublicDir == "/srv/www" &&
					cfg.KeepAliveDelay == DelayRange{Min: 5 * time.Millisecond, Max: 10 * time.Millisecond} &&
					cfg.PurchaseDelay == DelayRange{} &&
					cfg.ShutdownTimeout == 5*time.Second
			},
		},
		{
			name: "unparseable values fall back to defaults",
			envVars: map[string]string{
				"PURCHASE_MAX_DELAY_MS":    "slow",
				"SHUTDOWN_TIMEOUT_SECONDS": "soon",
			},
			expected: func(cfg *Config) bool {
				return cfg.PurchaseDelay.Max == 500*time.Millisecond &&
					cfg.ShutdownTimeout == 30*time.Second
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if !tt.expected(cfg) {
				t.Errorf("Load() configuration does not match expected values: %+v", cfg)
			}
		})
	}
}

func TestLoad_InvalidDelayRange(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "max below min",
			envVars: map[string]string{
				"PURCHASE_MIN_DELAY_MS": "400",
				"PURCHASE_MAX_DELAY_MS": "100",
			},
		},
		{
			name: "negative min",
			envVars: map[string]string{
				"KEEP_ALIVE_MIN_DELAY_MS": "-1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			if _, err := Load(); err == nil {
				t.Error("Load() error = nil, want error")
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		fallback string
		envValue string
		expected string
	}{
		{
			name:     "environment variable exists",
			key:      "SHOP_MOCK_TEST_VAR",
			fallback: "default",
			envValue: "env_value",
			expected: "env_value",
		},
		{
			name:     "environment variable does not exist",
			key:      "SHOP_MOCK_NONEXISTENT_VAR",
			fallback: "default",
			envValue: "",
			expected: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.fallback)
			if result != tt.expected {
				t.Errorf("getEnv() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAtoiOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "valid integer", input: "123", expected: 123},
		{name: "invalid integer", input: "abc", expected: 7},
		{name: "empty string", input: "", expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := atoiOrDefault(tt.input, 7)
			if result != tt.expected {
				t.Errorf("atoiOrDefault() = %v, want %v", result, tt.expected)
			}
		})
	}
}
