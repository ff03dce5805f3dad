package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Report formats accepted by report.format
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// ReportConfig represents report output configuration
type ReportConfig struct {
	// Enabled writes a report file when an interview completes
	Enabled bool `yaml:"enabled"`

	// Path is the report file path. Empty derives the name from the
	// format: prebate-report.html or prebate-report.md
	Path string `yaml:"path"`

	// Format is the report format (html, markdown)
	Format string `yaml:"format"`
}

// ScoringConfig represents probate label thresholds
type ScoringConfig struct {
	// ProbateLowMax is the highest probate score labelled Low
	ProbateLowMax int `yaml:"probate_low_max"`

	// ProbateModerateMax is the highest probate score labelled Moderate
	ProbateModerateMax int `yaml:"probate_moderate_max"`
}

// Config represents prebate configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory where session logs will be written
	LogDir string `yaml:"log_dir"`

	// Questions is an optional question set file. Empty uses the built-in set
	Questions string `yaml:"questions"`

	// Report contains report output configuration
	Report ReportConfig `yaml:"report"`

	// Scoring contains probate label thresholds
	Scoring ScoringConfig `yaml:"scoring"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogDir:    ".prebate/logs",
		Questions: "",
		Report: ReportConfig{
			Enabled: true,
			Path:    "",
			Format:  FormatHTML,
		},
		Scoring: ScoringConfig{
			ProbateLowMax:      2,
			ProbateModerateMax: 4,
		},
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
	if fileCfg.Questions != "" {
		cfg.Questions = fileCfg.Questions
	}
	if fileCfg.Report.Path != "" {
		cfg.Report.Path = fileCfg.Report.Path
	}
	if fileCfg.Report.Format != "" {
		cfg.Report.Format = fileCfg.Report.Format
	}

	// Booleans and zero thresholds are meaningful, so presence decides
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if section, ok := rawMap["report"].(map[string]interface{}); ok {
			if _, exists := section["enabled"]; exists {
				cfg.Report.Enabled = fileCfg.Report.Enabled
			}
		}
		if section, ok := rawMap["scoring"].(map[string]interface{}); ok {
			if _, exists := section["probate_low_max"]; exists {
				cfg.Scoring.ProbateLowMax = fileCfg.Scoring.ProbateLowMax
			}
			if _, exists := section["probate_moderate_max"]; exists {
				cfg.Scoring.ProbateModerateMax = fileCfg.Scoring.ProbateModerateMax
			}
		}
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel, logDir, questions, reportPath, reportFormat *string, reportEnabled *bool) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if questions != nil {
		c.Questions = *questions
	}
	if reportPath != nil {
		c.Report.Path = *reportPath
	}
	if reportFormat != nil {
		c.Report.Format = *reportFormat
	}
	if reportEnabled != nil {
		c.Report.Enabled = *reportEnabled
	}
}

// ReportPath returns the configured report path, or the default file name
// for the configured format.
func (c *Config) ReportPath() string {
	if c.Report.Path != "" {
		return c.Report.Path
	}
	if c.Report.Format == FormatMarkdown {
		return "prebate-report.md"
	}
	return "prebate-report.html"
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
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

	switch c.Report.Format {
	case FormatHTML, FormatMarkdown:
	default:
		return fmt.Errorf("invalid report.format %q, must be one of: html, markdown", c.Report.Format)
	}

	if c.Scoring.ProbateLowMax < 0 {
		return fmt.Errorf("scoring.probate_low_max must be >= 0, got %d", c.Scoring.ProbateLowMax)
	}
	if c.Scoring.ProbateModerateMax <= c.Scoring.ProbateLowMax {
		return fmt.Errorf("scoring.probate_moderate_max (%d) must be greater than scoring.probate_low_max (%d)",
			c.Scoring.ProbateModerateMax, c.Scoring.ProbateLowMax)
	}

	return nil
}
