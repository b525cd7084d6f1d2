package configs

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// FileConfig defines the structure loaded from the YAML configuration file.
// Everything here is also reachable via environment variables; the file is
// for checked-in per-store settings that rarely change.
type FileConfig struct {
	StoreDomain       string `yaml:"store_domain,omitempty"`
	APIVersion        string `yaml:"api_version,omitempty"`
	DefaultLocationID string `yaml:"default_location_id,omitempty"`
}

// Config holds the final application configuration, merged from file and
// environment variables. Fields are loaded from environment variables with
// the prefix "SHOPIFY_MCP_", overriding file settings.
type Config struct {
	// Config File Path (loaded first from env; empty means env-only)
	ConfigFilePath string `envconfig:"CONFIG_FILE"`

	// Store credentials and addressing
	StoreDomain       string `envconfig:"STORE_DOMAIN"`
	AccessToken       string `envconfig:"ACCESS_TOKEN"`
	APIVersion        string `envconfig:"API_VERSION" default:"2025-01"`
	DefaultLocationID string `envconfig:"DEFAULT_LOCATION_ID"`

	// Serving
	ListenAddr         string        `envconfig:"LISTEN_ADDR" default:":8080"`
	AdminListenAddr    string        `envconfig:"ADMIN_LISTEN_ADDR" default:":8081"`
	HTTPClientTimeout  time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"30s"`
	ShutdownTimeout    time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
	ServerReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"5s"`
	ServerWriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"10s"`
	ServerIdleTimeout  time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"120s"`

	// Observability
	OtelExporterOtlpEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelExporterOtlpInsecure bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
	LogLevel                 string `envconfig:"LOG_LEVEL" default:"info"`
}

// ParsedLogLevel returns the slog.Level based on the configured LogLevel string.
func (c *Config) ParsedLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		fallthrough
	default:
		return slog.LevelInfo
	}
}

// Validate reports the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.StoreDomain == "" {
		return fmt.Errorf("store domain is required (SHOPIFY_MCP_STORE_DOMAIN or store_domain in the config file)")
	}
	if c.AccessToken == "" {
		return fmt.Errorf("access token is required (SHOPIFY_MCP_ACCESS_TOKEN)")
	}
	return nil
}

// Load loads configuration from environment variables, then merges in the
// YAML file for fields whose environment variable is not set. Precedence is
// env over file over struct-tag default; a file value must not be clobbered
// back to a default just because the env var is absent.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("shopify_mcp", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	fileCfg := FileConfig{}
	if cfg.ConfigFilePath != "" {
		yamlFile, err := os.ReadFile(cfg.ConfigFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", cfg.ConfigFilePath, err)
		}
		if err := yaml.Unmarshal(yamlFile, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file '%s': %w", cfg.ConfigFilePath, err)
		}
		slog.Info("Loaded configuration from file.", "path", cfg.ConfigFilePath)
	}

	if fileCfg.StoreDomain != "" && !envSet("SHOPIFY_MCP_STORE_DOMAIN") {
		cfg.StoreDomain = fileCfg.StoreDomain
	}
	if fileCfg.APIVersion != "" && !envSet("SHOPIFY_MCP_API_VERSION") {
		cfg.APIVersion = fileCfg.APIVersion
	}
	if fileCfg.DefaultLocationID != "" && !envSet("SHOPIFY_MCP_DEFAULT_LOCATION_ID") {
		cfg.DefaultLocationID = fileCfg.DefaultLocationID
	}

	return &cfg, nil
}

// envSet reports whether the variable is present in the environment, even
// when set to an empty string.
func envSet(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}
