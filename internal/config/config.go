// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-parser/internal/extract"
	"github.com/jonathan/resume-parser/internal/layout"
	"github.com/jonathan/resume-parser/internal/logger"
	"github.com/jonathan/resume-parser/internal/subsections"
)

const (
	// DefaultConcurrency is the number of documents a batch parses at once
	DefaultConcurrency = 4
	// DefaultMaxFileSizeMB rejects larger documents before decoding
	DefaultMaxFileSizeMB = 20
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; zero values fall back to Default().
type Config struct {
	// Layout tuning
	YToleranceRatio float64 `json:"y_tolerance_ratio,omitempty" yaml:"y_tolerance_ratio,omitempty" validate:"gte=0,lte=2"`
	MinYTolerance   float64 `json:"min_y_tolerance,omitempty" yaml:"min_y_tolerance,omitempty" validate:"gte=0"`
	CharWidthMin    float64 `json:"char_width_min,omitempty" yaml:"char_width_min,omitempty" validate:"gte=0"`
	CharWidthMax    float64 `json:"char_width_max,omitempty" yaml:"char_width_max,omitempty" validate:"gte=0"`

	// Subsection tuning
	SubsectionGapRatio float64 `json:"subsection_gap_ratio,omitempty" yaml:"subsection_gap_ratio,omitempty" validate:"gte=0,lte=5"`
	SubsectionMinGap   float64 `json:"subsection_min_gap,omitempty" yaml:"subsection_min_gap,omitempty" validate:"gte=0"`

	// Behavior
	LogLevel      string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	LogFormat     string `json:"log_format,omitempty" yaml:"log_format,omitempty" validate:"omitempty,oneof=json pretty"`
	Concurrency   int    `json:"concurrency,omitempty" yaml:"concurrency,omitempty" validate:"gte=0,lte=64"`
	MaxFileSizeMB int    `json:"max_file_size_mb,omitempty" yaml:"max_file_size_mb,omitempty" validate:"gte=0"`
	DebugScores   bool   `json:"debug_scores,omitempty" yaml:"debug_scores,omitempty"`
}

// ValidationError describes an invalid configuration value
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config error: '%s' %s", e.Field, e.Message)
}

// Default returns the built-in configuration
func Default() Config {
	lo := layout.DefaultOptions()
	so := subsections.DefaultOptions()
	return Config{
		YToleranceRatio:    lo.YToleranceRatio,
		MinYTolerance:      lo.MinYTolerance,
		CharWidthMin:       lo.MinCharWidth,
		CharWidthMax:       lo.MaxCharWidth,
		SubsectionGapRatio: so.GapRatio,
		SubsectionMinGap:   so.MinGap,
		LogLevel:           "info",
		LogFormat:          "json",
		Concurrency:        DefaultConcurrency,
		MaxFileSizeMB:      DefaultMaxFileSizeMB,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks struct tag constraints and cross-field rules.
func (c *Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &ValidationError{Field: fe.Field(), Message: fmt.Sprintf("failed '%s' check", fe.Tag())}
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.CharWidthMin > 0 && c.CharWidthMax > 0 && c.CharWidthMin > c.CharWidthMax {
		return &ValidationError{Field: "char_width_min", Message: "must not exceed 'char_width_max'"}
	}
	return nil
}

// newValidator reports fields by their JSON key
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.YToleranceRatio == 0 {
		result.YToleranceRatio = defaults.YToleranceRatio
	}
	if result.MinYTolerance == 0 {
		result.MinYTolerance = defaults.MinYTolerance
	}
	if result.CharWidthMin == 0 {
		result.CharWidthMin = defaults.CharWidthMin
	}
	if result.CharWidthMax == 0 {
		result.CharWidthMax = defaults.CharWidthMax
	}
	if result.SubsectionGapRatio == 0 {
		result.SubsectionGapRatio = defaults.SubsectionGapRatio
	}
	if result.SubsectionMinGap == 0 {
		result.SubsectionMinGap = defaults.SubsectionMinGap
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.MaxFileSizeMB == 0 {
		result.MaxFileSizeMB = defaults.MaxFileSizeMB
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// LayoutOptions converts the layout tuning into line builder options
func (c *Config) LayoutOptions() layout.Options {
	return layout.Options{
		YToleranceRatio: c.YToleranceRatio,
		MinYTolerance:   c.MinYTolerance,
		MinCharWidth:    c.CharWidthMin,
		MaxCharWidth:    c.CharWidthMax,
	}
}

// ExtractOptions converts the subsection tuning into extractor options
func (c *Config) ExtractOptions() extract.Options {
	return extract.Options{
		Subsections: subsections.Options{GapRatio: c.SubsectionGapRatio, MinGap: c.SubsectionMinGap},
	}
}

// LoggerConfig returns the logging settings
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{Level: c.LogLevel, Format: c.LogFormat}
}

// MaxFileSizeBytes returns the document size limit in bytes, or 0 for no limit
func (c *Config) MaxFileSizeBytes() int64 {
	return int64(c.MaxFileSizeMB) << 20
}
