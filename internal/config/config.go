// Package config loads application settings from an optional YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Backend names a persistence backend for the record store.
type Backend string

const (
	FileBackend   Backend = "file"
	SQLiteBackend Backend = "sqlite"
	MemoryBackend Backend = "memory"
)

// IsValid reports whether the backend name is known.
func (b Backend) IsValid() bool {
	switch b {
	case FileBackend, SQLiteBackend, MemoryBackend:
		return true
	}
	return false
}

type Config struct {
	Port         string  `yaml:"port"`
	Backend      Backend `yaml:"backend"`
	DataFile     string  `yaml:"data_file"`
	SQLiteDBPath string  `yaml:"sqlite_db_path"`
	LogLevel     string  `yaml:"log_level"`
}

// DefaultConfigPath is where Load looks when no path is given.
func DefaultConfigPath() string {
	if p := os.Getenv("PRAYERLOG_CONFIG"); p != "" {
		return p
	}
	return "config.yaml"
}

// Load reads the YAML config file if it exists, then applies environment
// overrides. A missing file is not an error; defaults cover every field.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Port:         "8081",
		Backend:      FileBackend,
		DataFile:     "./data/practice-log.json",
		SQLiteDBPath: "./data/practice-log.db",
		LogLevel:     "info",
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("PRAYERLOG_BACKEND"); v != "" {
		cfg.Backend = Backend(strings.ToLower(v))
	}
	if v := os.Getenv("PRAYERLOG_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("PRAYERLOG_DB_PATH"); v != "" {
		cfg.SQLiteDBPath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if !c.Backend.IsValid() {
		problems = append(problems, fmt.Sprintf("invalid backend %q: must be one of file, sqlite, memory", c.Backend))
	}
	if c.Backend == FileBackend && strings.TrimSpace(c.DataFile) == "" {
		problems = append(problems, "data_file cannot be empty when using the file backend")
	}
	if c.Backend == SQLiteBackend && strings.TrimSpace(c.SQLiteDBPath) == "" {
		problems = append(problems, "sqlite_db_path cannot be empty when using the sqlite backend")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
