// Package config loads runtime settings from environment variables.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// LogFormat selects the slog handler.
type LogFormat string

const (
	LogText LogFormat = "text"
	LogJSON LogFormat = "json"
)

// Config holds all runtime settings for the CLI and the HTTP service.
type Config struct {
	Addr            string
	AllowedOrigins  []string
	StrictPurpose   bool
	LogLevel        slog.Level
	LogFormat       LogFormat
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	GinMode         string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		AllowedOrigins:  []string{"*"},
		StrictPurpose:   false,
		LogLevel:        slog.LevelInfo,
		LogFormat:       LogText,
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		GinMode:         "release",
	}
}

// MinPurposeLen is the minimum accepted length of a system purpose.
func (c Config) MinPurposeLen() int {
	if c.StrictPurpose {
		return 20
	}
	return 10
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func LoadConfig() Config {
	return loadFrom(os.Getenv)
}

func loadFrom(getenv func(string) string) Config {
	cfg := DefaultConfig()

	if v := getenv("AIACT_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := getenv("AIACT_ALLOWED_ORIGINS"); v != "" {
		if origins := splitList(v); len(origins) > 0 {
			cfg.AllowedOrigins = origins
		}
	}
	if v := getenv("AIACT_STRICT_PURPOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.StrictPurpose = b
		}
	}
	if v := getenv("AIACT_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if v := getenv("AIACT_LOG_FORMAT"); v != "" {
		switch LogFormat(strings.ToLower(v)) {
		case LogText:
			cfg.LogFormat = LogText
		case LogJSON:
			cfg.LogFormat = LogJSON
		}
	}
	applyDurationMs(getenv, "AIACT_READ_TIMEOUT_MS", &cfg.ReadTimeout)
	applyDurationMs(getenv, "AIACT_WRITE_TIMEOUT_MS", &cfg.WriteTimeout)
	applyDurationMs(getenv, "AIACT_SHUTDOWN_TIMEOUT_MS", &cfg.ShutdownTimeout)
	switch v := getenv("GIN_MODE"); v {
	case "debug", "release", "test":
		cfg.GinMode = v
	}

	return cfg
}

func applyDurationMs(getenv func(string) string, name string, dst *time.Duration) {
	v := getenv(name)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	*dst = time.Duration(n) * time.Millisecond
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
