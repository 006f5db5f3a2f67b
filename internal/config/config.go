package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"wikisuggest/internal/eventbus"
)

const (
	// DefaultSeed is the query shown on first start
	DefaultSeed = "Programming"
	// DefaultEndpoint is the Wikipedia API used for OpenSearch
	DefaultEndpoint = "https://en.wikipedia.org/w/api.php"
	// DefaultUserAgent identifies the client to the Wikimedia API
	DefaultUserAgent = "wikisuggest/1.0 (terminal search suggestions)"

	DefaultDebounceMs = 500
	DefaultGraceMs    = 200
)

// Config represents the application configuration
type Config struct {
	Version          int         `toml:"version"`
	Seed             string      `toml:"seed"`
	Endpoint         string      `toml:"endpoint"`
	UserAgent        string      `toml:"user_agent"`
	DebounceMs       int         `toml:"debounce_ms"`
	GraceMs          int         `toml:"grace_ms"`
	RequestTimeoutMs int         `toml:"request_timeout_ms"` // 0 means no client-side timeout
	ProxyURL         string      `toml:"proxy_url"`
	Log              LogSettings `toml:"log"`
	UISettings       UISettings  `toml:"ui"`
}

// LogSettings controls where and how much is logged
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Hyperlinks      bool `toml:"hyperlinks"`        // render suggestions as OSC 8 links
	MaxResultsShown int  `toml:"max_results_shown"` // 0 shows everything that fits
	CursorBlink     bool `toml:"cursor_blink"`
}

// Debounce returns the quiet period before a query settles
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// Grace returns the delay before an empty query clears the suggestions
func (c *Config) Grace() time.Duration {
	return time.Duration(c.GraceMs) * time.Millisecond
}

// RequestTimeout returns the per-request timeout, zero when disabled
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMs) * time.Millisecond
}

// Validate checks the configuration for values the application cannot use
func (c *Config) Validate() error {
	var errs []error
	if c.DebounceMs < 0 {
		errs = append(errs, fmt.Errorf("debounce_ms must not be negative, got %d", c.DebounceMs))
	}
	if c.GraceMs < 0 {
		errs = append(errs, fmt.Errorf("grace_ms must not be negative, got %d", c.GraceMs))
	}
	if c.RequestTimeoutMs < 0 {
		errs = append(errs, fmt.Errorf("request_timeout_ms must not be negative, got %d", c.RequestTimeoutMs))
	}
	if u, err := url.Parse(c.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("endpoint %q is not an absolute URL", c.Endpoint))
	}
	if c.ProxyURL != "" {
		u, err := url.Parse(c.ProxyURL)
		if err != nil {
			errs = append(errs, fmt.Errorf("proxy_url: %w", err))
		} else {
			switch u.Scheme {
			case "http", "https", "socks5":
			default:
				errs = append(errs, fmt.Errorf("proxy_url scheme %q is not supported", u.Scheme))
			}
		}
	}
	if c.UISettings.MaxResultsShown < 0 {
		errs = append(errs, fmt.Errorf("ui.max_results_shown must not be negative, got %d", c.UISettings.MaxResultsShown))
	}
	return errors.Join(errs...)
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "wikisuggest", "config.toml")
}

// NewConfigService creates a config service for the given file, or the
// default location when path is empty. The bus may be nil.
func NewConfigService(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{
		bus:      bus,
		filePath: path,
	}
}

// Path returns the file this service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults if it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
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

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		Seed:       DefaultSeed,
		Endpoint:   DefaultEndpoint,
		UserAgent:  DefaultUserAgent,
		DebounceMs: DefaultDebounceMs,
		GraceMs:    DefaultGraceMs,
		Log: LogSettings{
			File:  "wikisuggest.log",
			Level: "info",
		},
		UISettings: UISettings{
			Hyperlinks:  true,
			CursorBlink: true,
		},
	}
}
