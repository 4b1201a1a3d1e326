// Package config provides application configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ashureev/devops-courses/internal/validate"
)

// Config holds all application configuration.
type Config struct {
	Port            string        `env:"PORT" validate:"required,numeric"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" validate:"required,min=1,dive,required"`
	ProgressBackend string        `env:"PROGRESS_BACKEND" validate:"oneof=memory sqlite"`
	ProgressDSN     string        `env:"PROGRESS_DB_DSN"`
	SeedPath        string        `env:"SEED_PATH"` // optional JSON file replacing the built-in courses
	LogLevel        string        `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	Timeout         TimeoutConfig `env:"-"`
}

// TimeoutConfig groups server and health-check timeouts.
type TimeoutConfig struct {
	Read        time.Duration `env:"READ_TIMEOUT" validate:"gt=0"`
	Write       time.Duration `env:"WRITE_TIMEOUT" validate:"gt=0"`
	Idle        time.Duration `env:"IDLE_TIMEOUT" validate:"gt=0"`
	Shutdown    time.Duration `env:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
	HealthCheck time.Duration `env:"HEALTH_CHECK_TIMEOUT" validate:"gt=0"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8000"),
		AllowedOrigins:  getEnvList("ALLOWED_ORIGINS", []string{"*"}),
		ProgressBackend: strings.ToLower(getEnv("PROGRESS_BACKEND", "memory")),
		ProgressDSN:     getEnv("PROGRESS_DB_DSN", ""),
		SeedPath:        getEnv("SEED_PATH", ""),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Timeout: TimeoutConfig{
			Read:        getEnvDuration("READ_TIMEOUT", 30*time.Second),
			Write:       getEnvDuration("WRITE_TIMEOUT", 30*time.Second),
			Idle:        getEnvDuration("IDLE_TIMEOUT", 120*time.Second),
			Shutdown:    getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			HealthCheck: getEnvDuration("HEALTH_CHECK_TIMEOUT", 5*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all configuration fields hold usable values.
func (c *Config) Validate() error {
	err := validate.New().Struct(c)
	var fieldErrs validate.Errors
	if errors.As(err, &fieldErrs) {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fe.Reason)
		}
		return errors.New(strings.Join(msgs, "; "))
	}
	return err
}

// SlogLevel maps LogLevel to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// getEnvDuration returns fallback for unparsable values; Validate rejects
// non-positive ones.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}
