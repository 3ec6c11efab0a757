package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ohm-tools/bandcode/internal/resistor"
)

const (
	appName    = "bandcode"
	configFile = "config.yaml"
)

var (
	// Global config instance (loaded lazily)
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigErr  error

	// Mutex for thread-safe file operations
	fileMutex sync.Mutex
)

// Config holds user preferences for the conversion tools.
type Config struct {
	// Version of the config file format
	Version int `yaml:"version"`

	// ThreeBandTolerance selects how a decoded 3-band resistor reports
	// its tolerance: "unspecified" (default) leaves it absent,
	// "conventional20" fills in the conventional ±20%.
	ThreeBandTolerance string `yaml:"three_band_tolerance,omitempty"`

	// DefaultBandCount is the band count the interactive view starts
	// with. Must be 3-6; 0 means the built-in default of 6.
	DefaultBandCount int `yaml:"default_band_count,omitempty"`

	// LogLevel overrides BANDCODE_LOG_LEVEL when set.
	LogLevel string `yaml:"log_level,omitempty"`
}

// NewConfig returns a config with defaults.
func NewConfig() *Config {
	return &Config{
		Version:            1,
		ThreeBandTolerance: resistor.ToleranceUnspecified.String(),
		DefaultBandCount:   6,
	}
}

// TolerancePolicy resolves the configured three-band tolerance policy.
func (c *Config) TolerancePolicy() (resistor.TolerancePolicy, error) {
	return resistor.ParseTolerancePolicy(c.ThreeBandTolerance)
}

// Validate checks the config for out-of-range values.
func (c *Config) Validate() error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", c.Version)
	}
	if _, err := c.TolerancePolicy(); err != nil {
		return err
	}
	if c.DefaultBandCount != 0 && (c.DefaultBandCount < 3 || c.DefaultBandCount > 6) {
		return fmt.Errorf("default_band_count must be 3-6, got %d", c.DefaultBandCount)
	}
	return nil
}

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/bandcode or $HOME/.config/bandcode
//   - macOS: $HOME/.config/bandcode (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\bandcode
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: Use LOCALAPPDATA
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			// Fallback to USERPROFILE\AppData\Local if LOCALAPPDATA not set
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		// macOS: Use $HOME/.config/bandcode (following modern XDG convention)
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		// Linux and other Unix-like systems: Use XDG_CONFIG_HOME or $HOME/.config
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// ensureConfigDir ensures the configuration directory exists.
// Creates the directory with appropriate permissions if it doesn't exist.
func ensureConfigDir() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	// Create directory with user-only permissions (0700)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// Load loads the configuration from disk.
// If the file doesn't exist, returns a new default config.
// Thread-safe - multiple calls will return the same instance.
func Load() (*Config, error) {
	globalConfigOnce.Do(func() {
		globalConfig, globalConfigErr = loadFromDisk()
	})
	return globalConfig, globalConfigErr
}

// loadFromDisk performs the actual file loading.
func loadFromDisk() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Config doesn't exist - return defaults
		return NewConfig(), nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse unmarshals and validates config file contents.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.ThreeBandTolerance == "" {
		cfg.ThreeBandTolerance = resistor.ToleranceUnspecified.String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save saves the config to disk.
// Performs an atomic write to prevent corruption on crash.
func (c *Config) Save() error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	// Ensure config directory exists
	if err := ensureConfigDir(); err != nil {
		return fmt.Errorf("failed to ensure config directory exists: %w", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Add header comment
	header := []byte(`# Bandcode Configuration File
#
# three_band_tolerance: "unspecified" or "conventional20" - what a
#   decoded 3-band resistor reports as its tolerance.
# default_band_count: band count the interactive view starts with (3-6).
#
# Location: ` + configPath + `

`)
	data = append(header, data...)

	// Write to temporary file first (atomic write)
	tmpPath := configPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	// Atomic rename (this is atomic on all platforms)
	if err := os.Rename(tmpPath, configPath); err != nil {
		// Clean up temp file on error
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// Reload reloads the config from disk, discarding the cached instance.
// This is useful for reading changes made by another process.
func Reload() (*Config, error) {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	// Reset the global config
	globalConfigOnce = sync.Once{}
	return Load()
}
