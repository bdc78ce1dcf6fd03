package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/webtomcp/internal/config"
	"github.com/specialistvlad/webtomcp/internal/ctxlog"
	"github.com/specialistvlad/webtomcp/internal/descriptor"
	"github.com/specialistvlad/webtomcp/internal/inject"
	"github.com/specialistvlad/webtomcp/internal/javaast"
	"github.com/specialistvlad/webtomcp/internal/model"
	"github.com/specialistvlad/webtomcp/internal/propmerge"
	"github.com/specialistvlad/webtomcp/internal/provider"
	"github.com/specialistvlad/webtomcp/internal/registry"
	"github.com/specialistvlad/webtomcp/internal/session"
)

// ErrNoConvergence is returned when the pass limit is reached while passes
// still inject annotations.
var ErrNoConvergence = errors.New("transformation did not converge")

// Engine holds the components for one configuration. It is safe to run
// several times; every Run gets its own session.
type Engine struct {
	cfg      *config.Model
	resolver *descriptor.Resolver
	injector *inject.Injector
	synth    *provider.Synthesizer
	merger   *propmerge.Merger
}

// Result is the outcome of a successful run. ChangedPaths is in path
// order.
type Result struct {
	Forest       *model.Forest
	RunID        string
	Passes       int
	FlagEnabled  bool
	Registry     *registry.Registry
	Injected     int
	ChangedPaths []string
}

// New builds an engine for cfg.
func New(cfg *config.Model) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	merger, err := propmerge.New(cfg.Server, cfg.PropertyPaths)
	if err != nil {
		return nil, err
	}
	return &Engine{
		cfg:      cfg,
		resolver: descriptor.NewResolver(cfg.Dependency, cfg.WorkerCount),
		injector: inject.New(cfg.Markers, cfg.WorkerCount),
		synth:    provider.New(cfg.Markers, cfg.AggregatorName),
		merger:   merger,
	}, nil
}

// Run transforms a clone of forest and returns it with the run's summary.
// The only errors are a provider cardinality violation, ErrNoConvergence and
// context cancellation.
func (e *Engine) Run(ctx context.Context, forest *model.Forest) (*Result, error) {
	run := session.New()
	ctx = ctxlog.With(ctx, "run_id", run.ID)
	logger := ctxlog.FromContext(ctx)

	work := forest.Clone()
	idx := e.typeIndex(ctx, work)
	limit := countDeclarations(work) + 1
	logger.Info("Transformation started.", "files", work.Len(), "max_passes", limit)

	res := &Result{Forest: work, RunID: run.ID, Registry: registry.New()}
	for {
		pass := run.BeginPass()
		if pass > limit {
			return nil, fmt.Errorf("%w after %d passes", ErrNoConvergence, limit)
		}
		injected, reg, err := e.pass(ctxlog.With(ctx, "pass", pass), run, work, idx)
		if err != nil {
			return nil, err
		}
		res.Passes = pass
		res.Injected += injected
		res.Registry = reg
		if run.Edits() == 0 {
			break
		}
	}

	merged := e.merger.Merge(ctx, run, work)
	res.FlagEnabled = run.Flag.Enabled()
	for _, u := range work.Changed() {
		res.ChangedPaths = append(res.ChangedPaths, u.Path)
	}
	logger.Info("Transformation finished.",
		"passes", res.Passes,
		"enabled", res.FlagEnabled,
		"injected", res.Injected,
		"tools", res.Registry.Len(),
		"property_files", merged,
		"changed", len(res.ChangedPaths),
	)
	return res, nil
}

// pass runs one resolve, inject, scan and synthesize cycle and returns the
// number of injected methods and the registry it observed.
func (e *Engine) pass(ctx context.Context, run *session.Run, forest *model.Forest, idx javaast.TypeIndex) (int, *registry.Registry, error) {
	logger := ctxlog.FromContext(ctx)
	if err := e.resolver.Resolve(ctx, run, forest); err != nil {
		return 0, nil, fmt.Errorf("resolve feature flag: %w", err)
	}
	injected, err := e.injector.Inject(ctx, run, forest, idx)
	if err != nil {
		return 0, nil, fmt.Errorf("inject annotations: %w", err)
	}
	reg := registry.Scan(ctx, forest, e.cfg.Markers.Tool, idx)
	synthesized := 0
	if run.Flag.Enabled() {
		synthesized, err = e.synth.Synthesize(ctx, forest, reg, idx)
		if err != nil {
			return 0, nil, err
		}
	}
	logger.Info("Pass complete.",
		"enabled", run.Flag.Enabled(),
		"injected", injected,
		"tools", reg.Len(),
		"providers_written", synthesized,
	)
	return injected, reg, nil
}

// typeIndex collects every type declared in the project plus the marker
// vocabulary, so wildcard imports of either can be resolved.
func (e *Engine) typeIndex(ctx context.Context, forest *model.Forest) javaast.TypeSet {
	logger := ctxlog.FromContext(ctx)
	idx := javaast.TypeSet{}
	idx.Add(e.cfg.Markers.All()...)
	for _, u := range forest.OfFormat(model.FormatJava) {
		file, err := u.Java()
		if err != nil {
			logger.Warn("Source file could not be parsed and will not be rewritten.", "path", u.Path, "error", err)
			continue
		}
		idx.Add(file.DeclaredTypes()...)
	}
	return idx
}

// countDeclarations counts the methods of every parsed class. No run can
// inject more often than that.
func countDeclarations(forest *model.Forest) int {
	n := 0
	for _, u := range forest.OfFormat(model.FormatJava) {
		file, err := u.Java()
		if err != nil {
			continue
		}
		for _, c := range file.Classes() {
			n += len(c.Methods)
		}
	}
	return n
}
