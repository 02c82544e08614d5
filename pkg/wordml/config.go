package wordml

import (
	"errors"
	"os"
	"sync"
)

// Config contains the package-wide options of go-wordml
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string
	// StyleMapPath points at a YAML style map used when no styles part is supplied
	StyleMapPath string
	// DefaultParagraphStyle is the name reported for paragraphs without w:pStyle
	DefaultParagraphStyle string
	// DefaultCharacterStyle is the name reported for runs without w:rStyle
	DefaultCharacterStyle string
}

var (
	globalConfig      = ConfigFromEnvironment()
	globalConfigMutex sync.RWMutex
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:              "info",
		StyleMapPath:          "",
		DefaultParagraphStyle: "Normal",
		DefaultCharacterStyle: "Default Paragraph Font",
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// WORDML_LOG_LEVEL
	if val := os.Getenv("WORDML_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	// WORDML_STYLE_MAP
	if val := os.Getenv("WORDML_STYLE_MAP"); val != "" {
		config.StyleMapPath = val
	}

	// WORDML_DEFAULT_PARAGRAPH_STYLE
	if val := os.Getenv("WORDML_DEFAULT_PARAGRAPH_STYLE"); val != "" {
		config.DefaultParagraphStyle = val
	}

	// WORDML_DEFAULT_CHARACTER_STYLE
	if val := os.Getenv("WORDML_DEFAULT_CHARACTER_STYLE"); val != "" {
		config.DefaultCharacterStyle = val
	}

	return config
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}

	if !validLogLevels[normalizeLogLevel(c.LogLevel)] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	if c.DefaultParagraphStyle == "" {
		return errors.New("default paragraph style cannot be empty")
	}

	if c.DefaultCharacterStyle == "" {
		return errors.New("default character style cannot be empty")
	}

	return nil
}

// GetGlobalConfig returns a copy of the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}

	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	// Outside the lock: the logger reads the config back
	UpdateLoggerFromConfig()
}
