package docfill

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Config contains all configuration options for the docfill engine.
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off).
	LogLevel string
	// MinAssetPadding is the minimum column width, in characters, of the
	// key column when an asset section is rendered as plain text.
	MinAssetPadding int
	// MinSectionPadding is the minimum key column width for the plain-text
	// fallback rendering of a table section.
	MinSectionPadding int
	// PaddingMargin is added to the longest key length when it exceeds the
	// minimum padding.
	PaddingMargin int
	// StrictMode makes planners fail on markers without matching data
	// instead of skipping them.
	StrictMode bool
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:          "info",
		MinAssetPadding:   25,
		MinSectionPadding: 30,
		PaddingMargin:     5,
		StrictMode:        false,
	}
}

// ConfigFromEnvironment creates a configuration from environment
// variables, falling back to defaults for anything unset.
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	if val := os.Getenv("DOCFILL_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	if val := os.Getenv("DOCFILL_MIN_ASSET_PADDING"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.MinAssetPadding = n
		}
	}

	if val := os.Getenv("DOCFILL_MIN_SECTION_PADDING"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.MinSectionPadding = n
		}
	}

	if val := os.Getenv("DOCFILL_PADDING_MARGIN"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.PaddingMargin = n
		}
	}

	if val := os.Getenv("DOCFILL_STRICT_MODE"); val != "" {
		config.StrictMode = parseBool(val)
	}

	return config
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}
	if !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	if c.MinAssetPadding <= 0 {
		return errors.New("minimum asset padding must be positive")
	}

	if c.MinSectionPadding <= 0 {
		return errors.New("minimum section padding must be positive")
	}

	if c.PaddingMargin < 0 {
		return errors.New("padding margin cannot be negative")
	}

	return nil
}

// GetGlobalConfig returns a copy of the global configuration.
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}
	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration.
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	UpdateLoggerFromConfig()
}

func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
