package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/bnema/hoverkit/internal/logging"
)

// Config represents the complete configuration for hoverkit.
type Config struct {
	// Tooltip controls placement behavior of the hover engine.
	Tooltip TooltipConfig `mapstructure:"tooltip" yaml:"tooltip" toml:"tooltip"`
	// Sim configures the interactive viewport simulator.
	Sim SimConfig `mapstructure:"sim" yaml:"sim" toml:"sim"`
	// Logging holds logging configuration.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging"`
}

// TooltipConfig holds placement tuning for the hover engine.
type TooltipConfig struct {
	// ViewportMargin shrinks the effective viewport by this many pixels on
	// every edge before collision testing (0 = exact viewport).
	ViewportMargin float64 `mapstructure:"viewport_margin" yaml:"viewport_margin" toml:"viewport_margin"`
	// Placements is the preferred candidate order: where to try putting a
	// tooltip first. Ties after collision ranking keep this order.
	Placements []string `mapstructure:"placements" yaml:"placements" toml:"placements"`
	// ShowDelayMs is the delay before showing a tooltip, to avoid flicker
	// during rapid pointer movement. The engine computes placement only;
	// show/hide timing is the integrator's, so this is carried and
	// validated here for them but not consumed by hoverkit itself.
	ShowDelayMs int `mapstructure:"show_delay_ms" yaml:"show_delay_ms" toml:"show_delay_ms"`
}

// SimConfig holds the starting geometry for the simulator.
type SimConfig struct {
	DocumentWidth  int `mapstructure:"document_width" yaml:"document_width" toml:"document_width"`
	DocumentHeight int `mapstructure:"document_height" yaml:"document_height" toml:"document_height"`
	ViewportWidth  int `mapstructure:"viewport_width" yaml:"viewport_width" toml:"viewport_width"`
	ViewportHeight int `mapstructure:"viewport_height" yaml:"viewport_height" toml:"viewport_height"`
	TooltipWidth   int `mapstructure:"tooltip_width" yaml:"tooltip_width" toml:"tooltip_width"`
	TooltipHeight  int `mapstructure:"tooltip_height" yaml:"tooltip_height" toml:"tooltip_height"`
	ScrollStep     int `mapstructure:"scroll_step" yaml:"scroll_step" toml:"scroll_step"`
	CursorStep     int `mapstructure:"cursor_step" yaml:"cursor_step" toml:"cursor_step"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	// Configure Viper for TOML as default format
	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	// Set up environment variable support
	v.SetEnvPrefix("HOVERKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Logging environment variable bindings
	if err := v.BindEnv("logging.level", "HOVERKIT_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind HOVERKIT_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "HOVERKIT_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind HOVERKIT_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			if createErr := m.createDefaultConfig(); createErr != nil {
				return fmt.Errorf("failed to create default config: %w", createErr)
			}
		} else {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configDir, _ := GetConfigDir()
				configFile = filepath.Join(configDir, "config.toml")
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches", m.viper.ConfigFileUsed(), err)
	}

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

// Get returns the loaded configuration, or defaults before Load.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return m.config
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromEnv()
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

		m.mu.Lock()
		if err := m.reload(); err != nil {
			log.Warn().Err(err).Msg("failed to reload config")
			m.mu.Unlock()
			return
		}
		m.notifyCallbacksLocked()
	})

	m.watching = true
	return nil
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write. Releases the lock before calling callbacks.
func (m *Manager) notifyCallbacksLocked() {
	config := m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(config)
	}
}

// reload reloads the configuration (must be called with lock held for write).
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return err
	}

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("tooltip.viewport_margin", defaults.Tooltip.ViewportMargin)
	m.viper.SetDefault("tooltip.placements", defaults.Tooltip.Placements)
	m.viper.SetDefault("tooltip.show_delay_ms", defaults.Tooltip.ShowDelayMs)

	m.viper.SetDefault("sim.document_width", defaults.Sim.DocumentWidth)
	m.viper.SetDefault("sim.document_height", defaults.Sim.DocumentHeight)
	m.viper.SetDefault("sim.viewport_width", defaults.Sim.ViewportWidth)
	m.viper.SetDefault("sim.viewport_height", defaults.Sim.ViewportHeight)
	m.viper.SetDefault("sim.tooltip_width", defaults.Sim.TooltipWidth)
	m.viper.SetDefault("sim.tooltip_height", defaults.Sim.TooltipHeight)
	m.viper.SetDefault("sim.scroll_step", defaults.Sim.ScrollStep)
	m.viper.SetDefault("sim.cursor_step", defaults.Sim.CursorStep)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	// Let viper serialize the defaults it already holds.
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if err := GenerateSchemaFile(); err != nil {
		return fmt.Errorf("failed to generate config schema: %w", err)
	}

	return m.viper.ReadInConfig()
}

// GetConfigFileUsed returns the path to the configuration file being used.
func (m *Manager) GetConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}
