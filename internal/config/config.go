// Package config provides configuration types and helpers for textpipe.
package config

import (
	"fmt"
	"regexp"

	"github.com/spf13/viper"

	"textpipe/internal/preprocess"
)

// Default file paths used when nothing is configured.
const (
	DefaultInputPath  = "sample_data.txt"
	DefaultOutputPath = "report.txt"
)

// Config holds the application-wide configuration.
type Config struct {
	// InputPath is the text file the pipeline reads.
	InputPath string `mapstructure:"input_path"`

	// OutputPath is where the report file is written.
	OutputPath string `mapstructure:"output_path"`

	// PunctuationPattern is the regular expression of characters the
	// preprocessor deletes. Empty means the built-in default.
	PunctuationPattern string `mapstructure:"punctuation_pattern"`

	// Verbose enables debug-level diagnostics.
	Verbose bool `mapstructure:"verbose"`
}

// Load builds a Config from the current viper state.
func Load() (Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}
	if c.InputPath == "" {
		c.InputPath = DefaultInputPath
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	return c, nil
}

// CompilePunctuation compiles the configured punctuation pattern,
// falling back to the preprocessor default when unset.
func (c Config) CompilePunctuation() (*regexp.Regexp, error) {
	pattern := c.PunctuationPattern
	if pattern == "" {
		pattern = preprocess.DefaultPunctuationPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid punctuation_pattern %q: %w", pattern, err)
	}
	return re, nil
}
