package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/dcorder/internal/dcid"
	"github.com/specialistvlad/dcorder/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPaths []string // hcl files or directories

	LogFormat string
	LogLevel  string
	Output    string

	Changed     []string // vendor:name identifiers
	All         bool
	FailOnCycle bool
	Strict      bool
}

// NewConfig validates cfg and fills in defaults for empty optional fields.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.ConfigPaths) == 0 {
		return nil, errors.New("ConfigPaths is a required configuration field and cannot be empty")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "info"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if cfg.Output == "" {
		cfg.Output = string(report.FormatText)
	}
	format, err := report.ParseFormat(cfg.Output)
	if err != nil {
		return nil, err
	}
	cfg.Output = string(format)

	if cfg.All && len(cfg.Changed) > 0 {
		return nil, errors.New("--all and --changed are mutually exclusive")
	}
	if _, err := dcid.ParseAll(cfg.Changed); err != nil {
		return nil, err
	}

	return &cfg, nil
}
