// Package config manages the blastrel configuration file at ~/.blastrel/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hpkotak/blastrel/internal/logging"
	"github.com/hpkotak/blastrel/internal/stamp"
	"gopkg.in/yaml.v3"
)

var ErrNotFound = errors.New("config file not found")

const (
	DefaultExecTimeout = "0s"
	DefaultPlaceholder = stamp.DefaultToken
)

type Config struct {
	// Shell runs exec commands; empty means /bin/sh (cmd.exe on Windows).
	Shell         string `yaml:"shell"`
	ExecTimeout   string `yaml:"exec_timeout"`
	Placeholder   string `yaml:"placeholder"`
	StrictVersion bool   `yaml:"strict_version"`
	Log           Log    `yaml:"log"`
}

type Log struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	Timestamp bool   `yaml:"timestamp"`
}

// Dir returns the config directory path (~/.blastrel).
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".blastrel")
}

// Path returns the config file path (~/.blastrel/config.yaml).
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads and parses the config file. Returns ErrNotFound if it doesn't exist.
// Keys missing from the file keep their defaults.
func Load() (*Config, error) {
	return loadFrom(Path())
}

// LoadOrDefault is Load, falling back to Default when no file exists.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	return cfg, err
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save validates cfg and writes it to disk, creating the directory if needed.
func Save(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := marshalConfig(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(Path(), data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func marshalConfig(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// Default returns a config with sensible defaults.
func Default() *Config {
	return &Config{
		ExecTimeout: DefaultExecTimeout,
		Placeholder: DefaultPlaceholder,
		Log: Log{
			Level:  logging.DefaultLevel,
			Format: logging.DefaultFormat,
		},
	}
}

// Timeout parses ExecTimeout. An empty value means no timeout.
func (c *Config) Timeout() (time.Duration, error) {
	if strings.TrimSpace(c.ExecTimeout) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.ExecTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid exec_timeout %q: %w", c.ExecTimeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid exec_timeout %q: must not be negative", c.ExecTimeout)
	}
	return d, nil
}

// Validate checks values that would otherwise fail later at run time.
func (c *Config) Validate() error {
	if _, err := c.Timeout(); err != nil {
		return err
	}
	if c.Placeholder == "" {
		return fmt.Errorf("placeholder cannot be empty")
	}
	if strings.ContainsAny(c.Placeholder, "\r\n") {
		return fmt.Errorf("placeholder cannot span lines")
	}
	if !logging.ValidLevel(c.Log.Level) {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if !logging.ValidFormat(c.Log.Format) {
		return fmt.Errorf("invalid log format %q (text, color, json)", c.Log.Format)
	}
	return nil
}
