package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"chanpick/internal/eventbus"
)

// DefaultDebounce is the search re-evaluation quiescence window
const DefaultDebounce = 200 * time.Millisecond

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	RosterPath string     `toml:"roster_path"`
	DebounceMs int        `toml:"debounce_ms"`
	Styles     StyleHooks `toml:"styles"`
}

// StyleHooks are the visual-only customization points. They carry no
// behavioral settings.
type StyleHooks struct {
	TeamColor      string `toml:"team_color"`
	ChannelColor   string `toml:"channel_color"`
	HighlightColor string `toml:"highlight_color"`
	CursorColor    string `toml:"cursor_color"`
	MatchColor     string `toml:"match_color"`
	BorderColor    string `toml:"border_color"`
	Border         string `toml:"border"` // "normal", "rounded", or "none"
}

// Debounce returns the configured quiescence window
func (c *Config) Debounce() time.Duration {
	if c.DebounceMs <= 0 {
		return DefaultDebounce
	}
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		DebounceMs: int(DefaultDebounce / time.Millisecond),
		Styles: StyleHooks{
			TeamColor:      "99",
			ChannelColor:   "252",
			HighlightColor: "238",
			CursorColor:    "214",
			MatchColor:     "226",
			BorderColor:    "241",
			Border:         "rounded",
		},
	}
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service rooted in the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	dir := filepath.Join(configDir, "chanpick")
	os.MkdirAll(dir, 0755)

	return &configService{
		filePath: filepath.Join(dir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// NewConfigServiceAt creates a config service bound to an explicit path
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	return &configService{bus: bus, filePath: path}
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads the configuration from an explicit path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// First run: persist the defaults so there is a file to
			// edit. They still apply in memory if the write fails.
			cfg := DefaultConfig()
			if err := cs.SaveToPath(cfg, path); err != nil {
				log.Printf("could not write default config: %v", err)
			}
			cs.published(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cs.published(cfg)
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// SaveToPath saves the configuration to an explicit path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}
	return nil
}

func (cs *configService) published(cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{RosterPath: cfg.RosterPath})
	}
}
