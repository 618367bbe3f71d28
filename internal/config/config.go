// Package config provides configuration management for the report compiler.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mediawatch/monthly-compiler-go/internal/logger"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingRoot        = errors.New("input.root is required")
	ErrNoExtensions       = errors.New("input.extensions must list at least one extension")
	ErrInvalidExtension   = errors.New("input.extensions entries must start with '.'")
	ErrMissingSuffix      = errors.New("output.suffix is required")
	ErrInvalidFormat      = errors.New("output.format must be one of: xlsx, json, yaml")
	ErrInvalidLogLevel    = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat   = errors.New("logging.format must be 'console' or 'json'")
	ErrInvalidSheetLength = errors.New("output.max_sheet_name must be between 1 and 31")
)

// Output formats.
const (
	FormatXLSX = "xlsx"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Default values.
const (
	DefaultSuffix       = "_Compiled_Report.xlsx"
	DefaultMaxSheetName = 31
)

// DefaultExtensions lists the document types scanned when none are configured.
var DefaultExtensions = []string{".docx"}

// Config represents the complete compiler configuration.
type Config struct {
	Input   InputConfig   `mapstructure:"input" yaml:"input"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Logging logger.Config `mapstructure:"logging" yaml:"logging"`
}

// InputConfig controls which documents are scanned.
type InputConfig struct {
	Root       string   `mapstructure:"root" yaml:"root"`
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`
}

// OutputConfig controls where and how the report is written.
type OutputConfig struct {
	// Dir is the output directory; empty means the input root.
	Dir          string `mapstructure:"dir" yaml:"dir,omitempty"`
	Suffix       string `mapstructure:"suffix" yaml:"suffix"`
	Format       string `mapstructure:"format" yaml:"format"`
	MaxSheetName int    `mapstructure:"max_sheet_name" yaml:"max_sheet_name"`
	Summary      bool   `mapstructure:"summary" yaml:"summary"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input.Root) == "" {
		return ErrMissingRoot
	}

	if len(c.Input.Extensions) == 0 {
		return ErrNoExtensions
	}
	for i, ext := range c.Input.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: input.extensions[%d]=%q", ErrInvalidExtension, i, ext)
		}
	}

	if c.Output.Suffix == "" {
		return ErrMissingSuffix
	}

	switch c.Output.Format {
	case FormatXLSX, FormatJSON, FormatYAML:
	default:
		return ErrInvalidFormat
	}

	if c.Output.MaxSheetName < 1 || c.Output.MaxSheetName > DefaultMaxSheetName {
		return ErrInvalidSheetLength
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return ErrInvalidLogLevel
	}

	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return ErrInvalidLogFormat
	}

	return nil
}

// NormalizedExtensions returns the configured extensions in lower case.
func (c *Config) NormalizedExtensions() []string {
	exts := make([]string, len(c.Input.Extensions))
	for i, ext := range c.Input.Extensions {
		exts[i] = strings.ToLower(ext)
	}
	return exts
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Root: %s, Extensions: %v, Format: %s}",
		c.Input.Root,
		c.Input.Extensions,
		c.Output.Format,
	)
}
