package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/webtomcp/internal/engine"
	"github.com/specialistvlad/webtomcp/internal/fsutil"
)

// Run executes the main application logic: it transforms the project and
// writes the changed files back, or only lists them in dry-run mode.
func (a *App) Run(ctx context.Context) error {
	ctx = a.context(ctx)
	a.logger.Debug("App.Run method started.")

	cfg, err := a.LoadConfig(ctx)
	if err != nil {
		return err
	}
	eng, err := engine.New(cfg)
	if err != nil {
		return err
	}
	forest, err := a.LoadProject(ctx)
	if err != nil {
		return err
	}

	res, err := eng.Run(ctx, forest)
	if err != nil {
		return fmt.Errorf("transformation failed: %w", err)
	}

	if len(res.ChangedPaths) == 0 {
		a.logger.Info("Project already up to date.", "enabled", res.FlagEnabled)
		return nil
	}
	if a.config.DryRun {
		for _, p := range res.ChangedPaths {
			fmt.Fprintf(a.outW, "would change: %s\n", p)
		}
		a.logger.Info("Dry run, nothing written.", "changed", len(res.ChangedPaths))
		return nil
	}

	written, err := fsutil.WriteChanged(ctx, a.config.ProjectPath, res.Forest)
	if err != nil {
		return fmt.Errorf("failed to write changes: %w", err)
	}
	a.logger.Info("Changes written.", "files", len(written))
	a.logger.Debug("App.Run method finished.")
	return nil
}
