// Package config resolves server settings from the environment, with an
// optional .env file in the working directory.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	ModeStdio = "stdio"
	ModeHTTP  = "http"
)

// Config holds settings for the serve command
type Config struct {
	Mode     string `validate:"required,oneof=stdio http"`
	Host     string `validate:"required"`
	Port     int    `validate:"min=1,max=65535"`
	LogLevel string `validate:"required,oneof=debug info warn error"`
	LogJSON  bool
}

// Default returns the settings used when nothing is configured
func Default() *Config {
	return &Config{
		Mode:     ModeStdio,
		Host:     "0.0.0.0",
		Port:     8000,
		LogLevel: "info",
	}
}

// Load reads .env if present, then the process environment
func Load() (*Config, error) {
	// A missing .env is normal
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv. Unset variables keep their defaults.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := Default()

	if v := getenv("DEPLOYMENT_MODE"); v != "" {
		cfg.Mode = strings.ToLower(strings.TrimSpace(v))
	}
	if v := getenv("HOST"); v != "" {
		cfg.Host = v
	}
	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := getenv("LOG_JSON"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_JSON %q: %w", v, err)
		}
		cfg.LogJSON = b
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Addr returns the host:port the HTTP server listens on
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
