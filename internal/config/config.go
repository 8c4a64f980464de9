package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"spinslider/internal/domain"
	"spinslider/internal/eventbus"
)

// FileName is the per-directory config file looked up by default
const FileName = ".spinslider.toml"

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	Slider     SliderSettings `toml:"slider"`
	UISettings UISettings     `toml:"ui"`
	Items      []domain.Item  `toml:"items"`
}

// SliderSettings holds the carousel behaviour knobs
type SliderSettings struct {
	VisibleCount       int  `toml:"visible_count"`
	SidePeek           int  `toml:"side_peek"` // pixels
	AutoPlay           bool `toml:"auto_play"`
	AutoPlayIntervalMS int  `toml:"auto_play_interval_ms"`
	Infinite           bool `toml:"infinite"`
	ShowPagination     bool `toml:"show_pagination"`
	ShowNavigation     bool `toml:"show_navigation"`
	MinSwipeDistance   int  `toml:"min_swipe_distance"` // pixels
	InitialIndex       int  `toml:"initial_index"`
	MaxVisiblePages    int  `toml:"max_visible_pages"`
}

// AutoPlayInterval returns the auto-advance period
func (s SliderSettings) AutoPlayInterval() time.Duration {
	return time.Duration(s.AutoPlayIntervalMS) * time.Millisecond
}

// UISettings represents terminal-specific configuration
type UISettings struct {
	Title       string `toml:"title"`
	CellWidthPx int    `toml:"cell_width_px"` // used to turn mouse cells into pixels
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	Path() string
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "spinslider", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the user config directory
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the user config directory
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// Path returns the user-level config file read by Load
func (cs *configService) Path() string {
	return cs.filePath
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path, Items: len(cfg.Items)})
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}

	return nil
}

// Parse decodes TOML on top of the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate reports every setting the carousel arithmetic cannot work with
func (c *Config) Validate() error {
	s := c.Slider
	var errs []error
	if s.VisibleCount < 1 {
		errs = append(errs, fmt.Errorf("slider.visible_count must be at least 1, got %d", s.VisibleCount))
	}
	if s.SidePeek < 0 {
		errs = append(errs, fmt.Errorf("slider.side_peek must not be negative, got %d", s.SidePeek))
	}
	if s.AutoPlayIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("slider.auto_play_interval_ms must be positive, got %d", s.AutoPlayIntervalMS))
	}
	if s.MinSwipeDistance < 1 {
		errs = append(errs, fmt.Errorf("slider.min_swipe_distance must be at least 1, got %d", s.MinSwipeDistance))
	}
	if s.InitialIndex < 0 {
		errs = append(errs, fmt.Errorf("slider.initial_index must not be negative, got %d", s.InitialIndex))
	}
	if s.MaxVisiblePages < 1 {
		errs = append(errs, fmt.Errorf("slider.max_visible_pages must be at least 1, got %d", s.MaxVisiblePages))
	}
	if c.UISettings.CellWidthPx < 1 {
		errs = append(errs, fmt.Errorf("ui.cell_width_px must be at least 1, got %d", c.UISettings.CellWidthPx))
	}
	return errors.Join(errs...)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Slider: SliderSettings{
			VisibleCount:       1,
			SidePeek:           32,
			AutoPlay:           false,
			AutoPlayIntervalMS: 3000,
			Infinite:           false,
			ShowPagination:     true,
			ShowNavigation:     true,
			MinSwipeDistance:   50,
			InitialIndex:       0,
			MaxVisiblePages:    10,
		},
		UISettings: UISettings{
			Title:       "SpinSlider",
			CellWidthPx: 8,
		},
	}
}
