package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultReminderEvery = time.Hour

// Config holds the user's settings. Every field is optional in the file.
type Config struct {
	DataDir   string    `yaml:"data_dir"`
	DBPath    string    `yaml:"db_path"`
	Timezone  string    `yaml:"timezone"`
	LogLevel  string    `yaml:"log_level"`
	Reminders Reminders `yaml:"reminders"`
}

// Reminders configures the notification scheduler
type Reminders struct {
	Every time.Duration `yaml:"every"`
}

// Default returns the settings used when no config file exists
func Default() (Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("failed to find home directory: %w", err)
	}
	dataDir := filepath.Join(homeDir, ".timevate")
	return Config{
		DataDir:   dataDir,
		LogLevel:  "info",
		Reminders: Reminders{Every: defaultReminderEvery},
	}, nil
}

// DefaultPath returns ~/.timevate/config.yaml
func DefaultPath() (string, error) {
	cfg, err := Default()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg.DataDir, "config.yaml"), nil
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg.normalize()
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg.normalize()
}

func (c Config) normalize() (Config, error) {
	if c.DataDir == "" {
		return Config{}, fmt.Errorf("data_dir must not be empty")
	}
	if c.DBPath == "" {
		c.DBPath = filepath.Join(c.DataDir, "timevate.db")
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Reminders.Every <= 0 {
		c.Reminders.Every = defaultReminderEvery
	}
	if _, err := c.Location(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// WithDataDir moves the data directory, and the database with it unless
// db_path was set explicitly
func (c Config) WithDataDir(dir string) Config {
	if c.DBPath == filepath.Join(c.DataDir, "timevate.db") {
		c.DBPath = filepath.Join(dir, "timevate.db")
	}
	c.DataDir = dir
	return c
}

// Location resolves Timezone; empty means the machine's local zone
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// LogPath is where the CLI writes its log file
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "timevate.log")
}

// Save writes the config as YAML, creating the directory if needed
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
