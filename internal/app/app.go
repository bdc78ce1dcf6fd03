package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/webtomcp/internal/config"
	"github.com/specialistvlad/webtomcp/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// NewApp is the constructor for the main application. loader decodes the
// file named by appConfig.ConfigPath; when it is nil the loader is chosen
// from the file extension. An unknown log level or format is an error.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger, err := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	if err != nil {
		return nil, err
	}
	logger.Debug("Logger configured successfully.")
	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		loader: loader,
	}, nil
}

// context returns ctx carrying the app's logger.
func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
