package config

import (
	"os"
	"testing"
	"time"
)

// unsetenv clears a variable for the duration of the test, restoring the
// original value afterwards via t.Setenv's cleanup.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "LOG_LEVEL", "APP_VERSION", "TIMEOUT_SHUTDOWN"} {
		unsetenv(t, key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.HTTPPort != 8080 {
		t.Errorf("HTTPPort = %d, want 8080", cfg.HTTPPort)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.AppVersion != "unknown" {
		t.Errorf("AppVersion = %q, want %q", cfg.AppVersion, "unknown")
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout = %s, want 30s", cfg.ShutdownTimeout)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_VERSION", "1.2.3")
	t.Setenv("TIMEOUT_SHUTDOWN", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.HTTPPort != 9999 {
		t.Errorf("HTTPPort = %d, want 9999", cfg.HTTPPort)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.AppVersion != "1.2.3" {
		t.Errorf("AppVersion = %q, want %q", cfg.AppVersion, "1.2.3")
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %s, want 5s", cfg.ShutdownTimeout)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		HTTPPort:        8080,
		LogLevel:        "info",
		AppVersion:      "unknown",
		ShutdownTimeout: 30 * time.Second,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"port too low", func(c *Config) { c.HTTPPort = 0 }, true},
		{"port too high", func(c *Config) { c.HTTPPort = 70000 }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"zero shutdown timeout", func(c *Config) { c.ShutdownTimeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetHTTPAddr(t *testing.T) {
	cfg := Config{HTTPPort: 8080}
	if got := cfg.GetHTTPAddr(); got != ":8080" {
		t.Errorf("GetHTTPAddr() = %q, want %q", got, ":8080")
	}
}
