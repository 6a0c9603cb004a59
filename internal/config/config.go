package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vedantwpatil/autoclicker/internal/clicker"
	"github.com/vedantwpatil/autoclicker/internal/display"
	"github.com/vedantwpatil/autoclicker/internal/geometry"
	"github.com/vedantwpatil/autoclicker/internal/hotkey"
)

// NoDisplay leaves the region to the Region field
const NoDisplay = -1

type Config struct {
	Rate   float64        `yaml:"rate"`
	Repeat uint           `yaml:"repeat"`
	Region *geometry.Rect `yaml:"region"`
	// Display, when >= 0, bounds clicking to that display instead of Region
	Display int       `yaml:"display"`
	Hotkey  string    `yaml:"hotkey"`
	Log     LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

func NewConfig() *Config {
	return &Config{
		Rate:    10,
		Repeat:  0,
		Display: NoDisplay,
		Hotkey:  "ctrl+shift+d",
		Log: LogConfig{
			Level: "info",
			File:  "autoclicker.log",
		},
	}
}

// Load reads a YAML file on top of the defaults.
// ${VAR} and $VAR references are expanded from the environment before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load: %w", err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewConfig(), nil
	}
	return cfg, err
}

// LoadEnv loads a .env file into the process environment. A missing file is not an error.
func LoadEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: env %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if err := c.clickerConfig().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Display < NoDisplay {
		return fmt.Errorf("config: display must be %d or a display index, got %d", NoDisplay, c.Display)
	}
	if c.Hotkey != "" {
		if _, err := hotkey.Parse(c.Hotkey); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return 0, fmt.Errorf("config: log level: %w", err)
	}
	return level, nil
}

// Clicker builds the engine configuration, resolving Display into a region
func (c *Config) Clicker(src display.Source) (clicker.Config, error) {
	cfg := c.clickerConfig()
	if c.Display == NoDisplay {
		return cfg, nil
	}

	r, err := display.Bounds(src, c.Display)
	if err != nil {
		return clicker.Config{}, fmt.Errorf("config: %w", err)
	}
	cfg.Region = &r
	return cfg, nil
}

func (c *Config) clickerConfig() clicker.Config {
	return clicker.Config{
		Rate:   c.Rate,
		Repeat: c.Repeat,
		Region: c.Region,
	}.Clone()
}
