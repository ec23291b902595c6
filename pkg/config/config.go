// Package config handles loading and managing MindWell configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mindwell/mindwell/pkg/mood"
	"github.com/mindwell/mindwell/pkg/scoring"
)

// Store backends.
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendS3       = "s3"
	BackendGCS      = "gcs"
)

// Config is the top-level configuration for MindWell.
type Config struct {
	Store       StoreConfig                 `yaml:"store"`
	Logging     LoggingConfig               `yaml:"logging"`
	Mood        MoodConfig                  `yaml:"mood"`
	Identity    IdentityConfig              `yaml:"identity"`
	Instruments map[string]InstrumentConfig `yaml:"instruments"`
}

// StoreConfig selects where user state is kept. Only the section matching
// Backend is read.
type StoreConfig struct {
	Backend  string         `yaml:"backend"`
	Dir      string         `yaml:"dir"` // file backend; empty means DataDir()
	Redis    RedisConfig    `yaml:"redis"`
	Postgres PostgresConfig `yaml:"postgres"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	S3       S3Config       `yaml:"s3"`
	GCS      GCSConfig      `yaml:"gcs"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"` // empty means DataDir()/mindwell.db
}

type S3Config struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"` // for S3-compatible stores such as MinIO
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Prefix          string `yaml:"prefix"`
}

type GCSConfig struct {
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level      string `yaml:"level"`  // debug, info, warn, error
	Format     string `yaml:"format"` // text or json
	File       string `yaml:"file"`   // rotate into this file instead of stderr
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// MoodConfig tunes mood trend analysis.
type MoodConfig struct {
	WindowDays int             `yaml:"window_days"`
	Thresholds mood.Thresholds `yaml:"thresholds"`
	TopFactors int             `yaml:"top_factors"`
}

// IdentityConfig controls the local account placeholder.
type IdentityConfig struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

// InstrumentConfig overrides parts of a built-in questionnaire.
type InstrumentConfig struct {
	Tiers []scoring.Tier `yaml:"tiers"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: BackendFile,
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "mindwell:",
			},
			S3:  S3Config{Prefix: "mindwell/"},
			GCS: GCSConfig{Prefix: "mindwell/"},
		},
		Logging: LoggingConfig{
			Level:      "warn",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Mood: MoodConfig{
			WindowDays: 30,
			Thresholds: mood.DefaultTrendOptions().Thresholds,
			TopFactors: mood.DefaultTopK,
		},
		Identity: IdentityConfig{
			BcryptCost: 10,
		},
		Instruments: map[string]InstrumentConfig{},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendFile, BackendMemory, BackendRedis, BackendPostgres, BackendSQLite, BackendS3, BackendGCS:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if c.Mood.WindowDays <= 0 {
		return fmt.Errorf("mood.window_days must be positive, got %d", c.Mood.WindowDays)
	}
	if c.Mood.Thresholds.Neutral > c.Mood.Thresholds.Positive {
		return fmt.Errorf("mood.thresholds: neutral (%.1f) above positive (%.1f)",
			c.Mood.Thresholds.Neutral, c.Mood.Thresholds.Positive)
	}
	for key := range c.Instruments {
		if _, ok := scoring.Lookup(key); !ok {
			return fmt.Errorf("instruments: unknown instrument %q", key)
		}
	}
	return nil
}

// Instrument returns the built-in questionnaire for key with any configured
// tier override applied.
func (c *Config) Instrument(key string) (*scoring.ScoreConfig, error) {
	base, ok := scoring.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("unknown instrument %q", key)
	}
	override, ok := c.Instruments[key]
	if !ok || len(override.Tiers) == 0 {
		return base, nil
	}
	return base.WithTiers(override.Tiers)
}

// TrendOptions converts the mood section into analysis options.
func (m MoodConfig) TrendOptions() mood.TrendOptions {
	return mood.TrendOptions{Thresholds: m.Thresholds, TopK: m.TopFactors}
}

// FindConfigFile looks for .mindwell/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".mindwell", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// DataDir returns the directory user state lives in by default.
// Uses $XDG_DATA_HOME/mindwell, or ~/.local/share/mindwell.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "mindwell")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to temp dir if HOME isn't available
		home = os.TempDir()
	}
	return filepath.Join(home, ".local", "share", "mindwell")
}

// StoreDir returns the file backend directory for cfg.
func (c *Config) StoreDir() string {
	if c.Store.Dir != "" {
		return c.Store.Dir
	}
	return filepath.Join(DataDir(), "store")
}

// SQLitePath returns the sqlite database file for cfg.
func (c *Config) SQLitePath() string {
	if c.Store.SQLite.Path != "" {
		return c.Store.SQLite.Path
	}
	return filepath.Join(DataDir(), "mindwell.db")
}
