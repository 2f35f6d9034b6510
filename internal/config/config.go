package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	ViewInput     = "input"
	ViewDaily     = "daily"
	ViewAnalytics = "analytics"
)

type Config struct {
	DefaultView string   `toml:"default_view"`
	Categories  []string `toml:"categories"`
	LogLevel    string   `toml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		DefaultView: ViewInput,
		Categories:  []string{"Work", "Family", "Sleep", "Chores", "Hygiene", "Leisure"},
		LogLevel:    "info",
	}
}

func DaylogDir() (string, error) {
	if dir := os.Getenv("DAYLOG_HOME"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".daylog"), nil
}

func ConfigPath() (string, error) {
	dir, err := DaylogDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func LogPath() (string, error) {
	dir, err := DaylogDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "daylog.log"), nil
}

func EnsureDirectories() error {
	dir, err := DaylogDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// Load reads config.toml, creating it with defaults on first run, then
// applies DAYLOG_* environment overrides (a .env file in the working
// directory is honoured).
func Load() (*Config, error) {
	_ = godotenv.Load()

	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := EnsureDirectories(); err != nil {
			return nil, err
		}
		if err := Save(cfg); err != nil {
			return nil, err
		}
	} else if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}

	if v := os.Getenv("DAYLOG_DEFAULT_VIEW"); v != "" {
		cfg.DefaultView = v
	}
	if v := os.Getenv("DAYLOG_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	cfg.DefaultView = strings.ToLower(strings.TrimSpace(cfg.DefaultView))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(cfg *Config) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	f, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	switch c.DefaultView {
	case ViewInput, ViewDaily, ViewAnalytics:
	default:
		errs = append(errs, fmt.Sprintf("invalid default_view %q: must be input, daily or analytics", c.DefaultView))
	}

	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid log_level %q", c.LogLevel))
	}

	for i, cat := range c.Categories {
		if strings.TrimSpace(cat) == "" {
			errs = append(errs, fmt.Sprintf("categories[%d] is empty", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
