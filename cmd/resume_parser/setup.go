package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/logger"
	"github.com/jonathan/resume-parser/internal/parser"
)

// Environment variables providing flag defaults
const (
	envConfigPath = "RESUME_PARSER_CONFIG"
	envLogLevel   = "RESUME_PARSER_LOG_LEVEL"
)

// loadConfig reads the config file at path, or the one named by RESUME_PARSER_CONFIG when path
// is empty, applies the log level override from the environment and fills defaults.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		path = os.Getenv(envConfigPath)
	}

	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if level := os.Getenv(envLogLevel); level != "" {
		cfg.LogLevel = level
	}

	cfg = cfg.MergeWithDefaults(config.Default())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// initLogger configures the process logger. Verbose mode lowers the level to debug unless the
// environment pins it.
func initLogger(cfg config.Config, verbose bool) zerolog.Logger {
	lc := cfg.LoggerConfig()
	if verbose && os.Getenv(envLogLevel) == "" {
		lc.Level = "debug"
	}
	return logger.Init(lc)
}

func newParser(cfg config.Config, debugScores bool, log zerolog.Logger) *parser.Parser {
	opts := parser.DefaultOptions()
	opts.Layout = cfg.LayoutOptions()
	opts.Extract = cfg.ExtractOptions()
	opts.DebugScores = debugScores || cfg.DebugScores
	opts.Logger = log
	return parser.New(opts)
}

func marshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

func writeJSONFile(path string, v any) error {
	data, err := marshalJSON(v)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
