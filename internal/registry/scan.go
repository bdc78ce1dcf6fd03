package registry

import (
	"context"

	"github.com/specialistvlad/webtomcp/internal/ctxlog"
	"github.com/specialistvlad/webtomcp/internal/javaast"
	"github.com/specialistvlad/webtomcp/internal/model"
)

// Scan walks every class-like declaration in the forest and collects the
// classes with at least one method carrying the tool marker. Units that do
// not parse contribute nothing.
func Scan(ctx context.Context, forest *model.Forest, tool string, idx javaast.TypeIndex) *Registry {
	logger := ctxlog.FromContext(ctx)
	reg := New()
	for _, u := range forest.OfFormat(model.FormatJava) {
		file, err := u.Java()
		if err != nil {
			logger.Debug("Skipping unparsable source file.", "path", u.Path, "error", err)
			continue
		}
		for _, cls := range file.Classes() {
			if hasToolMethod(file, cls, tool, idx) {
				reg.add(cls.Qualified)
			}
		}
	}
	logger.Debug("Tool registry scanned.", "classes", reg.Len())
	return reg
}

func hasToolMethod(file *javaast.File, cls *javaast.ClassDecl, tool string, idx javaast.TypeIndex) bool {
	for _, m := range cls.Methods {
		if !m.Constructor && file.HasAnnotation(m.Annotations, idx, tool) {
			return true
		}
	}
	return false
}
