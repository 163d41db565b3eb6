// Package config loads the service configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/youruser/cardforge/internal/logging"
)

// Config is the complete service configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Render  RenderConfig  `yaml:"render"`
	Storage StorageConfig `yaml:"storage"`
	Cache   CacheConfig   `yaml:"cache"`
	Logger  LoggerConfig  `yaml:"logger"`
	Limits  LimitsConfig  `yaml:"limits"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// RenderConfig holds the defaults the calling layer applies before invoking
// the renderer, plus the font directory the style catalog reads from.
type RenderConfig struct {
	FontDir         string        `yaml:"font_dir"`
	DefaultTemplate string        `yaml:"default_template"`
	DefaultPalette  string        `yaml:"default_palette"`
	DefaultFont     string        `yaml:"default_font"` // empty keeps each template's headline face
	DefaultFormat   string        `yaml:"default_format"`
	ArtifactTTL     time.Duration `yaml:"artifact_ttl"`
	BatchWorkers    int           `yaml:"batch_workers"`
}

// StorageConfig selects where generated artifacts live until they expire.
type StorageConfig struct {
	Backend   string `yaml:"backend"` // "file" or "redis"
	ExportDir string `yaml:"export_dir"`
}

type CacheConfig struct {
	RedisHost  string `yaml:"redis_host"`
	ArtifactDB int    `yaml:"artifact_db"`
}

type LoggerConfig struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
	Level      string `yaml:"level"`
}

// Options converts the section for logging.Init.
func (l LoggerConfig) Options() logging.Options {
	return logging.Options{
		File:       l.File,
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		MaxAgeDays: l.MaxAgeDays,
		Compress:   l.Compress,
		Level:      l.Level,
	}
}

type LimitsConfig struct {
	MaxUploadBytes  int64 `yaml:"max_upload_bytes"`
	MaxBatchRecords int   `yaml:"max_batch_records"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{Port: ":8080"},
		Render: RenderConfig{
			FontDir:         "/usr/share/fonts/truetype/dejavu",
			DefaultTemplate: "executive_premium",
			DefaultPalette:  "executive_navy",
			DefaultFormat:   "png",
			ArtifactTTL:     60 * time.Second,
			BatchWorkers:    4,
		},
		Storage: StorageConfig{Backend: "file", ExportDir: "exports"},
		Cache:   CacheConfig{RedisHost: "localhost:6379"},
		Logger:  LoggerConfig{MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 7, Level: "info"},
		Limits:  LimitsConfig{MaxUploadBytes: 16 << 20, MaxBatchRecords: 500},
	}
}

// Load reads the file named by CONFIG_PATH (default config.yaml). A missing
// file yields Default().
func Load() Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default()
	}
	return LoadFrom(path)
}

// LoadFrom reads and validates the given file. Values not present in the file
// keep their defaults. It panics on unreadable files or invalid values.
func LoadFrom(path string) Config {
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("config: read %s: %v", path, err))
	}
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		panic(fmt.Sprintf("config: parse %s: %v", path, err))
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("config: %s: %v", path, err))
	}
	return cfg
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.Render.ArtifactTTL <= 0:
		return errors.New("render.artifact_ttl must be positive")
	case c.Render.BatchWorkers < 1:
		return errors.New("render.batch_workers must be at least 1")
	case c.Storage.Backend != "file" && c.Storage.Backend != "redis":
		return fmt.Errorf("storage.backend must be file or redis, got %q", c.Storage.Backend)
	case c.Storage.Backend == "file" && c.Storage.ExportDir == "":
		return errors.New("storage.export_dir is required for the file backend")
	case c.Storage.Backend == "redis" && c.Cache.RedisHost == "":
		return errors.New("cache.redis_host is required for the redis backend")
	case c.Limits.MaxUploadBytes <= 0:
		return errors.New("limits.max_upload_bytes must be positive")
	case c.Limits.MaxBatchRecords < 0:
		return errors.New("limits.max_batch_records must not be negative")
	}
	return nil
}
