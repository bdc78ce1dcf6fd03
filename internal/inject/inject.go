// Package inject adds tool annotations to web endpoint methods of
// framework-managed classes.
//
// A method qualifies when its class carries one of the component markers and
// the method carries at least one endpoint marker. Qualifying methods that
// already carry the tool marker are left alone, so running the injector over
// its own output changes nothing.
package inject

import (
	"context"
	"sync/atomic"

	"github.com/specialistvlad/webtomcp/internal/config"
	"github.com/specialistvlad/webtomcp/internal/ctxlog"
	"github.com/specialistvlad/webtomcp/internal/javaast"
	"github.com/specialistvlad/webtomcp/internal/model"
	"github.com/specialistvlad/webtomcp/internal/session"
	"golang.org/x/sync/errgroup"
)

// Injector decorates endpoint methods.
type Injector struct {
	markers config.Markers
	workers int
}

// New creates an injector for the marker vocabulary. workers bounds the
// number of files rewritten concurrently.
func New(markers config.Markers, workers int) *Injector {
	if workers < 1 {
		workers = 1
	}
	return &Injector{markers: markers, workers: workers}
}

// Inject rewrites every Java unit in the forest and returns the number of
// methods that received the tool marker. It does nothing unless the run's
// feature flag is set. The count is also recorded on the run.
func (in *Injector) Inject(ctx context.Context, run *session.Run, forest *model.Forest, idx javaast.TypeIndex) (int, error) {
	logger := ctxlog.FromContext(ctx)
	if !run.Flag.Enabled() {
		logger.Debug("Feature flag not set, skipping annotation injection.")
		return 0, nil
	}

	var total atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(in.workers)
	for _, u := range forest.OfFormat(model.FormatJava) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			file, err := u.Java()
			if err != nil {
				logger.Debug("Skipping unparsable source file.", "path", u.Path, "error", err)
				return nil
			}
			edits, decorated := in.planFile(ctx, file, idx)
			if decorated == 0 {
				return nil
			}
			u.SetContent(javaast.ApplyEdits(file.Src, edits))
			total.Add(int64(decorated))
			logger.Debug("Injected tool annotations.", "path", u.Path, "methods", decorated)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	n := int(total.Load())
	run.RecordEdits(n)
	return n, nil
}

// planFile computes the edits for one file in document order. It returns
// the edits and the number of decorated methods.
func (in *Injector) planFile(ctx context.Context, file *javaast.File, idx javaast.TypeIndex) ([]javaast.Edit, int) {
	logger := ctxlog.FromContext(ctx)
	toolName := in.annotationName(file, in.markers.Tool, idx)
	paramName := in.annotationName(file, in.markers.ToolParam, idx)

	var (
		edits     []javaast.Edit
		decorated int
		usedParam bool
	)
	for _, cls := range file.Classes() {
		if cls.Body == nil || !file.HasAnnotation(cls.Annotations, idx, in.markers.Components...) {
			continue
		}
		for _, m := range cls.Methods {
			if m.Constructor || !file.HasAnnotation(m.Annotations, idx, in.markers.Endpoints...) {
				continue
			}
			if file.HasAnnotation(m.Annotations, idx, in.markers.Tool) {
				continue
			}
			edits = append(edits, methodEdit(file, m, toolName))
			for _, p := range m.Params {
				if file.HasAnnotation(p.Annotations, idx, in.markers.ToolParam) {
					continue
				}
				edits = append(edits, paramEdit(p, paramName, m.Doc))
				usedParam = true
			}
			decorated++
			logger.Debug("Decorating endpoint method.", "class", cls.Qualified, "method", m.Name, "line", file.Line(m.Span.Start))
		}
	}
	if decorated == 0 {
		return nil, 0
	}

	imports := []string{in.markers.Tool}
	if usedParam {
		imports = append(imports, in.markers.ToolParam)
	}
	return append(file.ImportEdits(imports, idx), edits...), decorated
}

// annotationName returns the simple name when it can be imported without
// clashing, and the qualified name otherwise.
func (in *Injector) annotationName(file *javaast.File, fqn string, idx javaast.TypeIndex) string {
	if file.CanUseSimple(fqn, idx) {
		return simple(fqn)
	}
	return fqn
}

func simple(fqn string) string {
	for i := len(fqn) - 1; i >= 0; i-- {
		if fqn[i] == '.' {
			return fqn[i+1:]
		}
	}
	return fqn
}
