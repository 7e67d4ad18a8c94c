// Package config loads studio settings from file and environment.
// Env var overrides use prefix MINDCANVAS_; the file lives under
// ~/.config/mindcanvas unless MINDCANVAS_CONFIG points elsewhere.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Assistant AssistantConfig `mapstructure:"assistant"`
	UI        UIConfig        `mapstructure:"ui"`
	Layout    LayoutConfig    `mapstructure:"layout"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Export    ExportConfig    `mapstructure:"export"`
	Log       LogConfig       `mapstructure:"log"`
}

// AssistantConfig names the embedded assistant shown on the toolbar.
type AssistantConfig struct {
	Name string `mapstructure:"name"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Language string `mapstructure:"language"`
}

// LayoutConfig tunes the responsive toolbar engine.
type LayoutConfig struct {
	ResizeDelayMs         int `mapstructure:"resize_delay_ms"`
	StructureDelayMs      int `mapstructure:"structure_delay_ms"`
	AutoCollapseThreshold int `mapstructure:"auto_collapse_threshold"`
	CellWidthPx           int `mapstructure:"cell_width_px"`
}

// StorageConfig holds sqlite settings.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// ExportConfig holds snapshot output settings.
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// ResizeDelay returns the viewport debounce window.
func (c LayoutConfig) ResizeDelay() time.Duration {
	return time.Duration(c.ResizeDelayMs) * time.Millisecond
}

// StructureDelay returns the toolbar mutation debounce window.
func (c LayoutConfig) StructureDelay() time.Duration {
	return time.Duration(c.StructureDelayMs) * time.Millisecond
}

// Load reads configuration from file and env. Env var overrides use prefix MINDCANVAS_.
func Load() (Config, error) {
	v := viper.New()

	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "mindcanvas")

	// default values
	v.SetDefault("assistant.name", "MindMate AI")
	v.SetDefault("ui.language", "zh")
	v.SetDefault("layout.resize_delay_ms", 100)
	v.SetDefault("layout.structure_delay_ms", 150)
	v.SetDefault("layout.auto_collapse_threshold", 0)
	v.SetDefault("layout.cell_width_px", 9)
	v.SetDefault("storage.path", filepath.Join(dataDir, "mindcanvas.db"))
	v.SetDefault("export.dir", filepath.Join(dataDir, "exports"))
	v.SetDefault("log.path", filepath.Join(dataDir, "mindcanvas.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MINDCANVAS_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "mindcanvas"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MINDCANVAS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Path returns the config file location Save will write to.
func Path() string {
	if p := os.Getenv("MINDCANVAS_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "mindcanvas", "config.toml")
}

// Save writes the provided config to disk, creating the config directory if
// needed. In-app preference changes, like the language picker's choice, are
// persisted through here.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("assistant.name", cfg.Assistant.Name)
	v.Set("ui.language", cfg.UI.Language)
	v.Set("layout.resize_delay_ms", cfg.Layout.ResizeDelayMs)
	v.Set("layout.structure_delay_ms", cfg.Layout.StructureDelayMs)
	v.Set("layout.auto_collapse_threshold", cfg.Layout.AutoCollapseThreshold)
	v.Set("layout.cell_width_px", cfg.Layout.CellWidthPx)
	v.Set("storage.path", cfg.Storage.Path)
	v.Set("export.dir", cfg.Export.Dir)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
