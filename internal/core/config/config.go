// Package config handles configuration loading and validation for msgview.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/msgview/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	// Locale is a BCP 47 tag or Accept-Language style list. Empty means the
	// environment's LANG, then English.
	Locale string `yaml:"locale"`
	Theme  string `yaml:"theme"`
	// Catalogs are doublestar patterns of extra locale files named after
	// their locale, e.g. ~/.config/msgview/locales/**/de.yaml.
	Catalogs []string   `yaml:"catalogs"`
	Body     BodyConfig `yaml:"body"`
	TUI      TUIConfig  `yaml:"tui"`
}

// BodyConfig holds message body rendering defaults.
type BodyConfig struct {
	// MaxLength truncates bodies to this many characters when positive.
	MaxLength        int  `yaml:"max_length"`
	DisableLinks     bool `yaml:"disable_links"`
	DisableJumbomoji bool `yaml:"disable_jumbomoji"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	// Width wraps content to this many columns; zero follows the terminal.
	Width int        `yaml:"width"`
	Keys  KeysConfig `yaml:"keys"`
}

// KeysConfig maps TUI actions to the keys that trigger them.
type KeysConfig struct {
	Activate  []string `yaml:"activate"`
	NextFocus []string `yaml:"next_focus"`
	PrevFocus []string `yaml:"prev_focus"`
	NextTab   []string `yaml:"next_tab"`
	Quit      []string `yaml:"quit"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme:    styles.DefaultTheme,
		Catalogs: []string{},
		TUI: TUIConfig{
			Keys: KeysConfig{
				Activate:  []string{"space", "enter"},
				NextFocus: []string{"tab", "down", "j"},
				PrevFocus: []string{"shift+tab", "up", "k"},
				NextTab:   []string{"]"},
				Quit:      []string{"q", "ctrl+c"},
			},
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/msgview/config.yaml, falling back to
// the user config directory.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		if d, err := os.UserConfigDir(); err == nil {
			dir = d
		}
	}
	return filepath.Join(dir, "msgview", "config.yaml")
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Locale == "" {
		c.Locale = os.Getenv("LANG")
	}

	keys, def := &c.TUI.Keys, defaults.TUI.Keys
	for _, pair := range []struct {
		dst *[]string
		def []string
	}{
		{&keys.Activate, def.Activate},
		{&keys.NextFocus, def.NextFocus},
		{&keys.PrevFocus, def.PrevFocus},
		{&keys.NextTab, def.NextTab},
		{&keys.Quit, def.Quit},
	} {
		if len(*pair.dst) == 0 {
			*pair.dst = pair.def
		}
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", c.Theme, styles.ThemeNames())
	}

	if c.Body.MaxLength < 0 {
		return fmt.Errorf("body.max_length cannot be negative")
	}

	if c.TUI.Width < 0 {
		return fmt.Errorf("tui.width cannot be negative")
	}

	return nil
}
