package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Report formats
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatYAML     = "yaml"
	FormatJSON     = "json"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents civicmap configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir enables per-session diagnostic log files when non-empty
	LogDir string `yaml:"log_dir"`

	// Format selects the report format (text, markdown, html, yaml, json)
	Format string `yaml:"format"`

	// ChartWidth is the half-width, in characters, of the text bar chart
	ChartWidth int `yaml:"chart_width"`

	// ShowCandidates lists every archetype whose conditions hold
	ShowCandidates bool `yaml:"show_candidates"`

	// Color controls ANSI colour output (auto, always, never)
	Color string `yaml:"color"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "info",
		LogDir:         "", // File logging disabled
		Format:         FormatText,
		ChartWidth:     20,
		ShowCandidates: false,
		Color:          ColorAuto,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.LogDir != "" {
		cfg.LogDir = fileCfg.LogDir
	}
	if fileCfg.Format != "" {
		cfg.Format = fileCfg.Format
	}
	if fileCfg.Color != "" {
		cfg.Color = fileCfg.Color
	}

	// chart_width: 0 is an explicit (invalid) value, so check presence
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if _, exists := rawMap["chart_width"]; exists {
			cfg.ChartWidth = fileCfg.ChartWidth
		}
		if _, exists := rawMap["show_candidates"]; exists {
			cfg.ShowCandidates = fileCfg.ShowCandidates
		}
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel, logDir, format, color *string, showCandidates *bool) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if format != nil {
		c.Format = *format
	}
	if color != nil {
		c.Color = *color
	}
	if showCandidates != nil {
		c.ShowCandidates = *showCandidates
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid. log_level is matched
// case-insensitively and normalized to lower case.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	validFormats := map[string]bool{
		FormatText:     true,
		FormatMarkdown: true,
		FormatHTML:     true,
		FormatYAML:     true,
		FormatJSON:     true,
	}
	if !validFormats[c.Format] {
		return fmt.Errorf("invalid format %q, must be one of: text, markdown, html, yaml, json", c.Format)
	}

	if c.ChartWidth <= 0 {
		return fmt.Errorf("chart_width must be > 0, got %d", c.ChartWidth)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	return nil
}
