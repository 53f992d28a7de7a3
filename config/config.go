// Package config loads storefront settings from defaults, an optional YAML
// file and STOREFRONT_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr string `yaml:"addr"`
	// DatabaseURL enables the Postgres catalog and order store when set.
	DatabaseURL string `yaml:"database_url"`
	// CatalogPath is a YAML product list; empty means the built-in catalog.
	CatalogPath string `yaml:"catalog"`
	// FulfillmentURL receives checked-out orders over HTTP when set.
	FulfillmentURL string        `yaml:"fulfillment_url"`
	SubmitTimeout  time.Duration `yaml:"submit_timeout"`
	LogLevel       string        `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Addr:          ":8082",
		SubmitTimeout: 5 * time.Second,
		LogLevel:      "info",
	}
}

// Load returns the defaults overlaid with the file at path (if path is not
// empty) and then with the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(getenv func(string) string) error {
	set := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set("STOREFRONT_ADDR", &c.Addr)
	set("STOREFRONT_DATABASE_URL", &c.DatabaseURL)
	set("STOREFRONT_CATALOG", &c.CatalogPath)
	set("STOREFRONT_FULFILLMENT_URL", &c.FulfillmentURL)
	set("STOREFRONT_LOG_LEVEL", &c.LogLevel)

	if v := getenv("STOREFRONT_SUBMIT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("STOREFRONT_SUBMIT_TIMEOUT: %w", err)
		}
		c.SubmitTimeout = d
	}
	return nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr is required")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.SubmitTimeout <= 0 {
		return errors.New("submit_timeout must be positive")
	}
	return nil
}
