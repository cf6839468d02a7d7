package config

import (
	"fmt"
	"os"
	"strings"

	"fitbook/internal/pkg/timezone"
)

const (
	defaultPort            = "8080"
	defaultDatabaseURL     = "fitness.db"
	defaultLogLevel        = "info"
	defaultDisplayTimezone = "Asia/Kolkata"
)

// Config is the full runtime configuration, sourced from the environment.
type Config struct {
	AppEnv          string
	Port            string
	DatabaseURL     string
	LogLevel        string
	DefaultTimezone string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = getEnv("PORT", defaultPort)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)
	cfg.LogLevel = strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel))

	cfg.DefaultTimezone = getEnv("DEFAULT_TIMEZONE", defaultDisplayTimezone)
	if !timezone.Valid(cfg.DefaultTimezone) {
		return nil, fmt.Errorf("DEFAULT_TIMEZONE %q is not a valid IANA zone", cfg.DefaultTimezone)
	}

	return cfg, nil
}

func (c *Config) IsDev() bool { return c.AppEnv == "dev" }

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
