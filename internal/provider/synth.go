package provider

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/specialistvlad/webtomcp/internal/config"
	"github.com/specialistvlad/webtomcp/internal/ctxlog"
	"github.com/specialistvlad/webtomcp/internal/javaast"
	"github.com/specialistvlad/webtomcp/internal/model"
	"github.com/specialistvlad/webtomcp/internal/qname"
	"github.com/specialistvlad/webtomcp/internal/registry"
)

// Synthesizer creates and updates provider methods.
type Synthesizer struct {
	markers config.Markers
	name    string
}

// New creates a synthesizer. name is used for newly created provider
// methods; existing ones keep their own name.
func New(markers config.Markers, name string) *Synthesizer {
	return &Synthesizer{markers: markers, name: name}
}

// target is one entry-point class and its provider method, if any.
type target struct {
	unit     *model.SourceUnit
	file     *javaast.File
	class    *javaast.ClassDecl
	existing *javaast.MethodDecl
}

// Synthesize reconciles the provider method of every entry-point class with
// reg and returns the number of files it changed. An empty registry changes
// nothing.
func (s *Synthesizer) Synthesize(ctx context.Context, forest *model.Forest, reg *registry.Registry, idx javaast.TypeIndex) (int, error) {
	logger := ctxlog.FromContext(ctx)
	if reg.Len() == 0 {
		logger.Debug("Tool registry empty, skipping provider synthesis.")
		return 0, nil
	}

	targets, err := s.collect(ctx, forest, idx)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, t := range targets {
		edits := s.plan(ctx, t, reg, idx)
		if len(edits) == 0 {
			continue
		}
		t.unit.SetContent(javaast.ApplyEdits(t.file.Src, edits))
		changed++
	}
	return changed, nil
}

// collect finds the entry-point classes and validates that none has more
// than one provider method.
func (s *Synthesizer) collect(ctx context.Context, forest *model.Forest, idx javaast.TypeIndex) ([]target, error) {
	logger := ctxlog.FromContext(ctx)
	var (
		targets []target
		errs    []error
	)
	for _, u := range forest.OfFormat(model.FormatJava) {
		file, err := u.Java()
		if err != nil {
			logger.Debug("Skipping unparsable source file.", "path", u.Path, "error", err)
			continue
		}
		for _, cls := range file.Classes() {
			if cls.Body == nil || !file.HasAnnotation(cls.Annotations, idx, s.markers.EntryPoint) {
				continue
			}
			found := s.providerMethods(file, cls, idx)
			if len(found) > 1 {
				cerr := &CardinalityError{Path: u.Path, Class: cls.Qualified}
				for _, m := range found {
					cerr.Methods = append(cerr.Methods, m.Name)
					cerr.Lines = append(cerr.Lines, file.Line(m.Span.Start))
				}
				errs = append(errs, cerr)
				continue
			}
			t := target{unit: u, file: file, class: cls}
			if len(found) == 1 {
				t.existing = found[0]
			}
			targets = append(targets, t)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return targets, nil
}

func (s *Synthesizer) providerMethods(file *javaast.File, cls *javaast.ClassDecl, idx javaast.TypeIndex) []*javaast.MethodDecl {
	var out []*javaast.MethodDecl
	for _, m := range cls.Methods {
		if m.Constructor || m.ReturnType == nil {
			continue
		}
		if file.Resolve(m.ReturnType.Name, idx) == s.markers.Provider {
			out = append(out, m)
		}
	}
	return out
}

// plan returns the edits that bring one class in line with the registry, or
// nil when it already is.
func (s *Synthesizer) plan(ctx context.Context, t target, reg *registry.Registry, idx javaast.TypeIndex) []javaast.Edit {
	logger := ctxlog.FromContext(ctx).With("path", t.unit.Path, "class", t.class.Qualified)

	if t.existing != nil && s.matches(t.file, t.existing, reg, idx) {
		logger.Debug("Provider method up to date.", "method", t.existing.Name)
		return nil
	}

	names := newNamer(t.file, idx)
	params, args := names.params(reg.Sorted())
	provider := names.use(s.markers.Provider)
	builder := names.use(s.markers.ProviderBuilder)
	bean := names.use(s.markers.Bean)

	method := &javaast.MethodNode{
		Annotations: []*javaast.AnnotationNode{javaast.NewAnnotation(bean)},
		ReturnType:  provider,
		Name:        s.name,
		Params:      params,
		Body: []javaast.Stmt{javaast.Return{Value: javaast.Chain(
			javaast.Ident(builder),
			javaast.Call{Name: "builder"},
			javaast.Call{Name: "toolObjects", Args: args},
			javaast.Call{Name: "build"},
		)}},
	}

	indent := t.class.MemberIndent()
	unit := strings.TrimPrefix(indent, t.class.Body.CloseIndent)
	if unit == "" {
		unit = "    "
	}

	var edit javaast.Edit
	if t.existing != nil {
		method.Name = t.existing.Name
		text := strings.TrimPrefix(method.Render(indent, unit), indent)
		edit = javaast.Edit{Start: t.existing.Span.Start, End: t.existing.Span.End, Text: text}
		logger.Info("Replacing provider method.", "method", method.Name, "tools", reg.Len())
	} else {
		var ok bool
		edit, ok = t.class.AppendMemberEdit(t.file.Src, method.Render(indent, unit))
		if !ok {
			return nil
		}
		logger.Info("Adding provider method.", "method", method.Name, "tools", reg.Len())
	}
	return append(t.file.ImportEdits(names.imports, idx), edit)
}

// matches reports whether the method's parameter types, resolved to
// qualified names, are exactly the registry members.
func (s *Synthesizer) matches(file *javaast.File, m *javaast.MethodDecl, reg *registry.Registry, idx javaast.TypeIndex) bool {
	if len(m.Params) != reg.Len() {
		return false
	}
	types := make([]string, 0, len(m.Params))
	for _, p := range m.Params {
		if p.Type == nil {
			return false
		}
		types = append(types, file.Resolve(p.Type.Name, idx))
	}
	return reg.Equal(types)
}

// namer decides how each referenced type is written in one file. A type is
// written by its simple name when that name is free, and qualified
// otherwise. Simple names already claimed by an earlier type in the same
// method are not reused.
type namer struct {
	file    *javaast.File
	idx     javaast.TypeIndex
	claimed map[string]string
	vars    map[string]bool
	imports []string
}

func newNamer(file *javaast.File, idx javaast.TypeIndex) *namer {
	return &namer{file: file, idx: idx, claimed: map[string]string{}, vars: map[string]bool{}}
}

func (n *namer) use(fqn string) string {
	name, err := qname.Parse(fqn)
	if err != nil {
		return fqn
	}
	simple := name.Simple()
	if owner, ok := n.claimed[simple]; ok && owner != fqn {
		return fqn
	}
	if !n.file.CanUseSimple(fqn, n.idx) {
		return fqn
	}
	if _, ok := n.claimed[simple]; !ok {
		n.claimed[simple] = fqn
		n.imports = append(n.imports, fqn)
	}
	return simple
}

// params maps the sorted members to parameters and the matching argument
// list, giving each parameter a distinct variable name.
func (n *namer) params(members []string) ([]javaast.ParamNode, []javaast.Expr) {
	params := make([]javaast.ParamNode, 0, len(members))
	args := make([]javaast.Expr, 0, len(members))
	for _, fqn := range members {
		v := n.variable(fqn)
		params = append(params, javaast.ParamNode{Type: n.use(fqn), Name: v})
		args = append(args, javaast.Ident(v))
	}
	return params, args
}

func (n *namer) variable(fqn string) string {
	base := fqn
	if name, err := qname.Parse(fqn); err == nil {
		base = name.VariableName()
	}
	v := base
	for i := 2; n.vars[v]; i++ {
		v = base + strconv.Itoa(i)
	}
	n.vars[v] = true
	return v
}
