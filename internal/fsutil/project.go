package fsutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/webtomcp/internal/ctxlog"
	"github.com/specialistvlad/webtomcp/internal/model"
)

// LoadProject reads every known file under root into a forest keyed by
// slash-separated relative paths.
func LoadProject(ctx context.Context, root string) (*model.Forest, error) {
	logger := ctxlog.FromContext(ctx)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("project path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project path %s is not a directory", root)
	}

	paths, err := FindProjectFiles(root)
	if err != nil {
		return nil, fmt.Errorf("scan project %s: %w", root, err)
	}
	forest := model.NewForest(nil)
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(p)))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		forest.Add(model.NewSourceUnit(p, content))
	}
	logger.Debug("Project loaded.", "root", root, "files", forest.Len())
	return forest, nil
}

// WriteChanged writes every changed unit back under root, keeping each
// file's permissions, and returns the written paths.
func WriteChanged(ctx context.Context, root string, forest *model.Forest) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	var written []string
	for _, u := range forest.Changed() {
		target := filepath.Join(root, filepath.FromSlash(u.Path))
		mode := os.FileMode(0o644)
		if info, err := os.Stat(target); err == nil {
			mode = info.Mode().Perm()
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return written, fmt.Errorf("write %s: %w", u.Path, err)
		}
		if err := os.WriteFile(target, u.Content(), mode); err != nil {
			return written, fmt.Errorf("write %s: %w", u.Path, err)
		}
		logger.Debug("File written.", "path", u.Path)
		written = append(written, u.Path)
	}
	return written, nil
}
