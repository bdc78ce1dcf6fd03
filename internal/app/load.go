package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/webtomcp/internal/config"
	"github.com/specialistvlad/webtomcp/internal/ctxlog"
	"github.com/specialistvlad/webtomcp/internal/fsutil"
	"github.com/specialistvlad/webtomcp/internal/model"
)

// LoadConfig returns the tool configuration: the defaults, overlaid with
// the config file when one is set and with the worker count flag.
func (a *App) LoadConfig(ctx context.Context) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	cfg := config.Default()
	if path := a.config.ConfigPath; path != "" {
		loader := a.loader
		if loader == nil {
			var err error
			if loader, err = loaderForPath(path); err != nil {
				return nil, err
			}
		}
		logger.Debug("Loading configuration file...", "path", path)
		loaded, err := loader.Load(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}
	if a.config.WorkerCount > 0 {
		cfg.WorkerCount = a.config.WorkerCount
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger.Debug("Configuration ready.", "dependency", cfg.Dependency.String(), "workers", cfg.WorkerCount)
	return cfg, nil
}

// LoadProject reads the project tree into a forest.
func (a *App) LoadProject(ctx context.Context) (*model.Forest, error) {
	logger := ctxlog.FromContext(ctx)
	forest, err := fsutil.LoadProject(ctx, a.config.ProjectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	logger.Info("Project loaded.", "path", a.config.ProjectPath, "files", forest.Len())
	return forest, nil
}
