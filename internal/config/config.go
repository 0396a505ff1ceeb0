// Package config loads the optional navtext YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"example.com/navtext/internal/common"
	"example.com/navtext/internal/gpstime"
	"example.com/navtext/internal/navframe"
)

type Config struct {
	Timezone       string           `yaml:"timezone"`
	ProgressEvery  uint64           `yaml:"progressEvery"`
	OffsetFallback string           `yaml:"utcOffsetFallback"`
	Logs           common.LogConfig `yaml:"logs"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads path and fills unset values with defaults. Relative log
// directories are resolved against the directory of the file.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if dir := strings.TrimSpace(cfg.Logs.Directory); dir != "" && !filepath.IsAbs(dir) {
		cfg.Logs.Directory = filepath.Join(filepath.Dir(path), dir)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	if c.ProgressEvery == 0 {
		c.ProgressEvery = 4096
	}
	if c.OffsetFallback == "" {
		c.OffsetFallback = navframe.OffsetLeap
	}
	if c.Logs.MaxSizeMB <= 0 {
		c.Logs.MaxSizeMB = 25
	}
	if c.Logs.MaxAgeDays <= 0 {
		c.Logs.MaxAgeDays = 7
	}
	if c.Logs.MaxBackups <= 0 {
		c.Logs.MaxBackups = 5
	}
}

func (c Config) Validate() error {
	if _, err := gpstime.Location(c.Timezone); err != nil {
		return err
	}
	switch c.OffsetFallback {
	case navframe.OffsetLeap, navframe.OffsetZero:
	default:
		return fmt.Errorf("utcOffsetFallback must be %q or %q, got %q", navframe.OffsetLeap, navframe.OffsetZero, c.OffsetFallback)
	}
	return nil
}
