package app

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Output formats for the tasks listing.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProjectPath string // .hcl file or directory of .hcl files
	OutDir      string // artifacts are written below this directory
	DryRun      bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills defaults. OutDir defaults to the
// project directory, or to the directory holding a single project file.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProjectPath == "" {
		return nil, errors.New("ProjectPath is a required configuration field and cannot be empty")
	}
	if cfg.OutDir == "" {
		cfg.OutDir = cfg.ProjectPath
		if filepath.Ext(cfg.ProjectPath) == ".hcl" {
			cfg.OutDir = filepath.Dir(cfg.ProjectPath)
		}
	}
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}
	return &cfg, nil
}
