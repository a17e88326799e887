// Package config loads jot's settings from defaults, a TOML file and
// command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/jot/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config `toml:"logger"`
	Editor  EditorConfig  `toml:"editor"`
	History HistoryConfig `toml:"history"`
	Plugins PluginsConfig `toml:"plugins"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int    `toml:"tab_width"`
	ScrollOff       int    `toml:"scroll_off"`
	SystemClipboard bool   `toml:"system_clipboard"`
	Theme           string `toml:"theme"` // empty selects the built-in default
}

// HistoryConfig controls how the action log is shown.
type HistoryConfig struct {
	PreviewWidth    int    `toml:"preview_width"`
	TimestampFormat string `toml:"timestamp_format"`
	ConfirmReset    bool   `toml:"confirm_reset"`
}

// PluginsConfig holds per-plugin tables.
type PluginsConfig struct {
	Autocommit AutocommitConfig `toml:"autocommit"`
}

// AutocommitConfig configures the periodic commit plugin.
type AutocommitConfig struct {
	Enabled  bool     `toml:"enabled"`
	Interval Duration `toml:"interval"`
}

// Duration decodes TOML strings such as "30s" into a time.Duration.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for toml.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
		},
		History: HistoryConfig{
			PreviewWidth:    DefaultPreviewWidth,
			TimestampFormat: DefaultTimestampFormat,
			ConfirmReset:    true,
		},
		Plugins: PluginsConfig{
			Autocommit: AutocommitConfig{
				Enabled:  false,
				Interval: Duration{DefaultAutocommitInterval},
			},
		},
	}
}

// DefaultPath returns ~/.config/jot/config.toml, or "" when the user config
// directory is unknown.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// ThemesDir returns the directory scanned for user themes, or "" when the
// user config directory is unknown.
func ThemesDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, ThemesDirName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
// It returns the keys toml did not recognise.
func loadFromFile(filePath string, cfg *Config) ([]string, error) {
	if _, err := os.Stat(filePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	var undecoded []string
	for _, key := range metadata.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

// validate resets invalid values to their defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.History.PreviewWidth <= 0 {
		c.History.PreviewWidth = defaults.History.PreviewWidth
	}
	if c.History.TimestampFormat == "" {
		c.History.TimestampFormat = defaults.History.TimestampFormat
	}
	if c.Plugins.Autocommit.Interval.Duration <= 0 {
		c.Plugins.Autocommit.Interval = defaults.Plugins.Autocommit.Interval
	}
}

// Load builds the configuration: defaults, then the TOML file at path (or
// DefaultPath when path is empty), then flag overrides. The returned
// warnings list unrecognised keys; the logger is usually not ready yet, so
// the caller logs them.
func Load(path string, flags *Flags) (*Config, []string, error) {
	cfg := NewDefaultConfig()

	if path == "" {
		path = DefaultPath()
	}
	var warnings []string
	if path != "" {
		undecoded, err := loadFromFile(path, cfg)
		if err != nil {
			return nil, nil, err
		}
		for _, key := range undecoded {
			warnings = append(warnings, fmt.Sprintf("config file '%s': unrecognized key %s", path, key))
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, warnings, nil
}
