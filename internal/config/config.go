package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"wristlist/internal/errors"

	"gopkg.in/yaml.v3"
)

// Display shapes.
const (
	ShapeRect  = "rect"
	ShapeRound = "round"
)

// Storage backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config represents the application configuration structure.
type Config struct {
	Display struct {
		Shape  string `yaml:"shape"`  // rect or round
		Width  int    `yaml:"width"`  // Face width in terminal columns
		Height int    `yaml:"height"` // Face height in terminal lines
	} `yaml:"display"`
	Menu struct {
		RowHeight int `yaml:"row_height"` // Fixed height of every row, in lines
		BoxSize   int `yaml:"box_size"`   // Checkbox width, in columns
	} `yaml:"menu"`
	Dialog struct {
		FrameIntervalMS int `yaml:"frame_interval_ms"` // Animation tick period
	} `yaml:"dialog"`
	Storage struct {
		Backend string `yaml:"backend"` // memory or sqlite
		Path    string `yaml:"path"`    // sqlite database file
	} `yaml:"storage"`
	Checklist struct {
		MaxItems      int `yaml:"max_items"`       // Additions beyond this are ignored
		MaxNameLength int `yaml:"max_name_length"` // Longer names are truncated
	} `yaml:"checklist"`
	Theme struct {
		Background          string `yaml:"background"`           // Window and normal cell background
		Foreground          string `yaml:"foreground"`           // Normal cell text
		HighlightBackground string `yaml:"highlight_background"` // Focused cell background
		HighlightForeground string `yaml:"highlight_foreground"` // Focused cell text
		DialogBackground    string `yaml:"dialog_background"`    // Deletion dialog background
	} `yaml:"theme"`
	Logging struct {
		Debug bool   `yaml:"debug"` // Enable debug output
		JSON  bool   `yaml:"json"`  // JSON lines instead of text
		File  string `yaml:"file"`  // Log file used while the TUI runs
	} `yaml:"logging"`
}

// DefaultPath returns ~/.config/wristlist/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wristlist", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if tempCfg.Display.Shape != "" {
		cfg.Display.Shape = tempCfg.Display.Shape
	}
	if tempCfg.Display.Width != 0 {
		cfg.Display.Width = tempCfg.Display.Width
	}
	if tempCfg.Display.Height != 0 {
		cfg.Display.Height = tempCfg.Display.Height
	}
	if tempCfg.Menu.RowHeight != 0 {
		cfg.Menu.RowHeight = tempCfg.Menu.RowHeight
	}
	if tempCfg.Menu.BoxSize != 0 {
		cfg.Menu.BoxSize = tempCfg.Menu.BoxSize
	}
	if tempCfg.Dialog.FrameIntervalMS != 0 {
		cfg.Dialog.FrameIntervalMS = tempCfg.Dialog.FrameIntervalMS
	}
	if tempCfg.Storage.Backend != "" {
		cfg.Storage.Backend = tempCfg.Storage.Backend
	}
	if tempCfg.Storage.Path != "" {
		cfg.Storage.Path = tempCfg.Storage.Path
	}
	if tempCfg.Checklist.MaxItems != 0 {
		cfg.Checklist.MaxItems = tempCfg.Checklist.MaxItems
	}
	if tempCfg.Checklist.MaxNameLength != 0 {
		cfg.Checklist.MaxNameLength = tempCfg.Checklist.MaxNameLength
	}
	if tempCfg.Theme.Background != "" {
		cfg.Theme.Background = tempCfg.Theme.Background
	}
	if tempCfg.Theme.Foreground != "" {
		cfg.Theme.Foreground = tempCfg.Theme.Foreground
	}
	if tempCfg.Theme.HighlightBackground != "" {
		cfg.Theme.HighlightBackground = tempCfg.Theme.HighlightBackground
	}
	if tempCfg.Theme.HighlightForeground != "" {
		cfg.Theme.HighlightForeground = tempCfg.Theme.HighlightForeground
	}
	if tempCfg.Theme.DialogBackground != "" {
		cfg.Theme.DialogBackground = tempCfg.Theme.DialogBackground
	}
	cfg.Logging.Debug = tempCfg.Logging.Debug
	cfg.Logging.JSON = tempCfg.Logging.JSON
	if tempCfg.Logging.File != "" {
		cfg.Logging.File = tempCfg.Logging.File
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig mirrors the original watch app: a 144x168 rectangular
// screen, yellow window with army green focus, 13ms animation ticks.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Display.Shape = ShapeRect
	cfg.Display.Width = 36
	cfg.Display.Height = 21

	cfg.Menu.RowHeight = 3
	cfg.Menu.BoxSize = 3

	cfg.Dialog.FrameIntervalMS = 13

	cfg.Storage.Backend = BackendSQLite
	cfg.Storage.Path = defaultDataPath("checklist.db")

	cfg.Checklist.MaxItems = 30
	cfg.Checklist.MaxNameLength = 64

	cfg.Theme.Background = "#FFFF00"          // Yellow
	cfg.Theme.Foreground = "#000000"          // Black
	cfg.Theme.HighlightBackground = "#555500" // Army green
	cfg.Theme.HighlightForeground = "#FFFFFF" // White
	cfg.Theme.DialogBackground = "#AAAA00"    // Limerick

	cfg.Logging.File = defaultStatePath("wristlist.log")

	return cfg
}

func defaultDataPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".local", "share", "wristlist", name)
}

func defaultStatePath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".local", "state", "wristlist", name)
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	invalid := func(param, format string, args ...interface{}) error {
		return errors.NewConfigError("invalid configuration", param, errors.InvalidConfig, fmt.Errorf(format, args...))
	}

	if c.Display.Shape != ShapeRect && c.Display.Shape != ShapeRound {
		return invalid("display.shape", "must be %q or %q, got %q", ShapeRect, ShapeRound, c.Display.Shape)
	}
	if c.Display.Width < 16 {
		return invalid("display.width", "must be >= 16 columns")
	}
	if c.Menu.RowHeight < 1 {
		return invalid("menu.row_height", "must be >= 1 line")
	}
	if c.Display.Height < c.Menu.RowHeight+2 {
		return invalid("display.height", "must leave room for the status bar and one row")
	}
	if c.Menu.BoxSize < 3 || 2*c.Menu.BoxSize >= c.Display.Width {
		return invalid("menu.box_size", "must be >= 3 and less than half the display width")
	}
	if c.Dialog.FrameIntervalMS < 1 {
		return invalid("dialog.frame_interval_ms", "must be >= 1")
	}
	if c.Storage.Backend != BackendMemory && c.Storage.Backend != BackendSQLite {
		return invalid("storage.backend", "must be %q or %q, got %q", BackendMemory, BackendSQLite, c.Storage.Backend)
	}
	if c.Storage.Backend == BackendSQLite && c.Storage.Path == "" {
		return invalid("storage.path", "required for the sqlite backend")
	}
	if c.Checklist.MaxItems < 1 {
		return invalid("checklist.max_items", "must be >= 1")
	}
	if c.Checklist.MaxNameLength < 1 {
		return invalid("checklist.max_name_length", "must be >= 1")
	}

	return nil
}

// FrameInterval returns the dialog animation tick period.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Dialog.FrameIntervalMS) * time.Millisecond
}

// IsRound reports whether the display uses round geometry.
func (c *Config) IsRound() bool {
	return c.Display.Shape == ShapeRound
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}
