package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/enumgen/internal/config"
	"github.com/vk/enumgen/internal/ctxlog"
)

// App encapsulates the generator's dependencies, configuration, and
// lifecycle.
type App struct {
	errW   io.Writer
	logger *slog.Logger
	cfg    *config.Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and generator
// configuration. A config file that cannot be loaded is a fatal startup
// error and panics; the CLI entrypoint recovers it into a clean exit.
func NewApp(errW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	cfg := config.Default()
	if appConfig.ConfigPath != "" {
		loaded, err := config.Load(ctx, appConfig.ConfigPath, runVariables(appConfig))
		if err != nil {
			panic(fmt.Errorf("failed to load generator config: %w", err))
		}
		cfg = loaded
	}
	logger.Debug("Generator configuration ready.",
		"header", cfg.HeaderFile, "source", cfg.SourceFile)

	return &App{
		errW:   errW,
		logger: logger,
		cfg:    cfg,
	}
}

// Config returns the effective generator configuration. This is primarily
// for testing.
func (a *App) Config() *config.Config {
	return a.cfg
}

// runVariables exposes run parameters to config attribute expressions.
func runVariables(appConfig *Config) map[string]cty.Value {
	xml := cty.ListValEmpty(cty.String)
	if len(appConfig.XMLPaths) > 0 {
		vals := make([]cty.Value, 0, len(appConfig.XMLPaths))
		for _, p := range appConfig.XMLPaths {
			vals = append(vals, cty.StringVal(p))
		}
		xml = cty.ListVal(vals)
	}
	return map[string]cty.Value{
		"outdir": cty.StringVal(appConfig.OutDir),
		"xml":    xml,
	}
}
