// Package config handles application configuration and environment loading.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/CinisterOne/LWC/internal/ddl"
)

// DatabaseConfig is the database block of the configuration file.
type DatabaseConfig struct {
	Adapter  string `yaml:"adapter"`  // mysql, postgres, sqlite, duckdb
	Path     string `yaml:"path"`     // file path for embedded adapters
	Host     string `yaml:"host"`     // networked adapters only
	Port     int    `yaml:"port"`     // networked adapters only
	Database string `yaml:"database"` // schema / database name
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"` // postgres only (default "disable")

	// Prefix is prepended to every table name on networked adapters.
	// A missing or null value behaves like the empty string.
	Prefix *string `yaml:"prefix"`
}

// TablePrefix returns the configured prefix, or "" when unset.
func (d DatabaseConfig) TablePrefix() string {
	if d.Prefix == nil {
		return ""
	}
	return *d.Prefix
}

// PermissionsConfig configures the built-in static permission provider.
type PermissionsConfig struct {
	Enabled bool                `yaml:"enabled"`
	Groups  map[string][]string `yaml:"groups"`  // group -> permission nodes
	Players map[string]string   `yaml:"players"` // player -> group
}

// Config holds the configuration for the schema synchronizer and its
// metrics listener.
type Config struct {
	Database    DatabaseConfig    `yaml:"database"`
	Permissions PermissionsConfig `yaml:"permissions"`
	LogLevel    string            `yaml:"log_level"`   // debug, info, warn, error (default "info")
	ListenAddr  string            `yaml:"listen_addr"` // metrics HTTP address (default ":8080")

	// Warnings collects non-fatal warnings generated during config loading.
	// These are logged by the caller after the logger is initialised.
	Warnings []string `yaml:"-"`
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Dialect resolves the configured adapter.
func (c *Config) Dialect() (ddl.Dialect, error) {
	return ddl.LookupDialect(c.Database.Adapter)
}

// Load reads the YAML file at path (skipped when path is empty), applies
// environment overrides and fills defaults. Environment variables win over
// the file.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // path is caller-controlled
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables only.
func LoadFromEnv() (*Config, error) {
	return Load("")
}

func applyEnv(cfg *Config) error {
	db := &cfg.Database
	setString(&db.Adapter, "LWC_DB_ADAPTER")
	setString(&db.Path, "LWC_DB_PATH")
	setString(&db.Host, "LWC_DB_HOST")
	setString(&db.Database, "LWC_DB_NAME")
	setString(&db.Username, "LWC_DB_USER")
	setString(&db.Password, "LWC_DB_PASSWORD")
	setString(&db.SSLMode, "LWC_DB_SSLMODE")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.ListenAddr, "LISTEN_ADDR")

	if v := os.Getenv("LWC_DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LWC_DB_PORT: %w", err)
		}
		db.Port = port
	}

	// An explicitly empty LWC_DB_PREFIX clears a prefix set in the file.
	if v, ok := os.LookupEnv("LWC_DB_PREFIX"); ok {
		db.Prefix = &v
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func (c *Config) finalize() error {
	db := &c.Database
	if db.Adapter == "" {
		db.Adapter = "sqlite"
	}
	dialect, err := ddl.LookupDialect(db.Adapter)
	if err != nil {
		return err
	}
	db.Adapter = dialect.Name

	if db.Database == "" {
		db.Database = "lwc"
	}
	if dialect.Networked {
		if db.Host == "" {
			db.Host = "localhost"
		}
		if db.Port == 0 {
			db.Port = defaultPort(dialect)
		}
		if dialect == ddl.Postgres && db.SSLMode == "" {
			db.SSLMode = "disable"
		}
	} else if db.Path == "" {
		db.Path = "lwc." + dialect.Name
	}

	if err := ddl.ValidatePrefix(db.TablePrefix()); err != nil {
		c.Warnings = append(c.Warnings, fmt.Sprintf("table prefix is not a plain identifier: %v", err))
	}
	if !dialect.Networked && db.TablePrefix() != "" {
		c.Warnings = append(c.Warnings,
			fmt.Sprintf("table prefix %q is ignored by the %s adapter", db.TablePrefix(), dialect.Name))
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}
	return nil
}

func defaultPort(d ddl.Dialect) int {
	if d == ddl.Postgres {
		return 5432
	}
	return 3306
}

// LoadDotEnv reads a .env file and sets any variables not already in the
// environment. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
