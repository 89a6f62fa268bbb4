package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/projforge/internal/config"
	"github.com/specialistvlad/projforge/internal/ctxlog"
	"github.com/specialistvlad/projforge/internal/registry"
	"github.com/spf13/afero"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	fs       afero.Fs
	loader   config.Loader
	registry *registry.Registry
}

// NewApp is the constructor for the main application. Results go to outW and
// logs to logW. With no modules given, the core modules are registered.
func NewApp(outW, logW io.Writer, cfg *Config, fsys afero.Fs, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules), "components", reg.Names())

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		fs:       fsys,
		loader:   loader,
		registry: reg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
