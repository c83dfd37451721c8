package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/dcorder/internal/config"
	"github.com/specialistvlad/dcorder/internal/ctxlog"
	"github.com/specialistvlad/dcorder/internal/registry"
	"github.com/specialistvlad/dcorder/internal/report"
	"github.com/specialistvlad/dcorder/internal/resolver"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	format   report.Format
	registry *registry.Registry
	resolver *resolver.Resolver
}

// NewApp is the constructor for the main application. It loads the track
// through loader, populates an isolated registry and indexes it. Reports go
// to outW, logs to logW.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	format, err := report.ParseFormat(appConfig.Output)
	if err != nil {
		return nil, err
	}

	// Load all configuration into the format-agnostic model first.
	cfgModel, err := loader.Load(ctx, appConfig.ConfigPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	reg, err := registry.NewFromModel(ctx, cfgModel)
	if err != nil {
		return nil, err
	}
	reg.RebuildReverseIndex()
	logger.Info("Track loaded.",
		"configuration", reg.Configuration().Name,
		"compartments", len(reg.Compartments()),
		"components", reg.Len(),
	)

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		format:   format,
		registry: reg,
		resolver: resolver.New(reg),
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
