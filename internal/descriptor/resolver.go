package descriptor

import (
	"context"

	"github.com/specialistvlad/webtomcp/internal/config"
	"github.com/specialistvlad/webtomcp/internal/ctxlog"
	"github.com/specialistvlad/webtomcp/internal/model"
	"github.com/specialistvlad/webtomcp/internal/session"
	"golang.org/x/sync/errgroup"
)

// Scanner answers whether one descriptor declares the target dependency.
type Scanner interface {
	Scan(content []byte) (bool, error)
}

// Resolver drives the scanners over a forest. It is built once per run and
// reused by every pass.
type Resolver struct {
	coord    config.Coordinate
	scanners map[Kind]Scanner
	workers  int
}

// NewResolver creates a resolver for the coordinate. workers bounds the
// number of descriptors scanned concurrently.
func NewResolver(coord config.Coordinate, workers int) *Resolver {
	if workers < 1 {
		workers = 1
	}
	return &Resolver{
		coord: coord,
		scanners: map[Kind]Scanner{
			KindMaven:  NewMavenScanner(coord),
			KindGradle: NewGradleScanner(coord),
		},
		workers: workers,
	}
}

// Resolve scans every build descriptor in the forest and sets the run's flag
// when one of them declares the coordinate. Descriptors that cannot be read
// are skipped. Once the flag is set the remaining descriptors are not
// scanned. It returns only when every started scan has finished.
func (r *Resolver) Resolve(ctx context.Context, run *session.Run, forest *model.Forest) error {
	logger := ctxlog.FromContext(ctx)
	if run.Flag.Enabled() {
		logger.Debug("Feature flag already set, skipping descriptor scan.")
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	scanned := 0
	for _, u := range forest.Units() {
		kind := Classify(u.Path)
		if kind == KindNone {
			continue
		}
		if run.Flag.Enabled() {
			break
		}
		scanned++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if run.Flag.Enabled() {
				return nil
			}
			found, err := r.scanners[kind].Scan(u.Content())
			if err != nil {
				logger.Debug("Skipping unreadable build descriptor.", "path", u.Path, "kind", kind.String(), "error", err)
				return nil
			}
			if found && run.Flag.Set() {
				logger.Info("Target dependency found.", "path", u.Path, "kind", kind.String(), "dependency", r.coord.String())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Debug("Descriptor scan complete.", "scanned", scanned, "enabled", run.Flag.Enabled())
	return nil
}
