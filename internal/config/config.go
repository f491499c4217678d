// Package config loads scanctl settings from defaults, an optional TOML file
// and SCANCTL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Engine  EngineConfig
	Session SessionConfig
	Log     LogConfig
	UI      UIConfig
}

// EngineConfig locates the scanning engine.
type EngineConfig struct {
	URL     string
	Timeout time.Duration
}

// SessionConfig holds scan session defaults.
type SessionConfig struct {
	PageSize         int    `mapstructure:"page_size"`
	WriteParallelism int    `mapstructure:"write_parallelism"`
	ValueType        string `mapstructure:"value_type"`
}

// LogConfig selects the log level and handler format.
type LogConfig struct {
	Level  string
	Format string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Mode   string // auto, simple, tui
	Format string // table, yaml
}

// New returns a viper instance with every default registered and file/env
// lookup configured. Callers may bind flags onto it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("engine.url", "http://127.0.0.1:1420")
	v.SetDefault("engine.timeout", 10*time.Second)
	v.SetDefault("session.page_size", 100)
	v.SetDefault("session.write_parallelism", 8)
	v.SetDefault("session.value_type", "i32")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("ui.mode", "auto")
	v.SetDefault("ui.format", "table")

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("SCANCTL_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "scanctl"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SCANCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file if one exists and decodes the result.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate rejects settings the session cannot run with.
func (c Config) Validate() error {
	if c.Engine.URL == "" {
		return fmt.Errorf("engine.url must not be empty")
	}

	if c.Session.PageSize <= 0 {
		return fmt.Errorf("session.page_size must be positive, got %d", c.Session.PageSize)
	}

	if c.Session.WriteParallelism <= 0 {
		return fmt.Errorf("session.write_parallelism must be positive, got %d", c.Session.WriteParallelism)
	}

	switch c.UI.Mode {
	case "auto", "simple", "tui":
	default:
		return fmt.Errorf("ui.mode must be auto, simple or tui, got %q", c.UI.Mode)
	}

	switch c.UI.Format {
	case "table", "yaml":
	default:
		return fmt.Errorf("ui.format must be table or yaml, got %q", c.UI.Format)
	}

	return nil
}
