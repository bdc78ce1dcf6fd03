package inject

import (
	"github.com/specialistvlad/webtomcp/internal/javaast"
)

// methodDescription is the summary of the method's javadoc, or the method
// name when it has none.
func methodDescription(m *javaast.MethodDecl) string {
	if m.Doc == nil {
		return m.Name
	}
	return m.Doc.Description()
}

// paramDescription is the text of the matching @param entry, or the
// parameter name when there is no such entry.
func paramDescription(p *javaast.Param, doc *javaast.Javadoc) string {
	if d, ok := doc.ParamDescription(p.Name); ok {
		return d
	}
	return p.Name
}

func descriptionAnnotation(name, description string) string {
	return javaast.NewAnnotation(name, javaast.Attr{Name: "description", Value: javaast.StringLit(description)}).String()
}

// methodEdit places the tool annotation after the method's last annotation,
// on its own line when the annotations are laid out one per line.
func methodEdit(file *javaast.File, m *javaast.MethodDecl, name string) javaast.Edit {
	text := descriptionAnnotation(name, methodDescription(m))
	last := m.Annotations[len(m.Annotations)-1]
	indent := file.IndentAt(last.Span.Start)
	if indent == "" {
		indent = m.Indent
	}
	if indent == "" {
		return javaast.Edit{Start: last.Span.End, End: last.Span.End, Text: " " + text}
	}
	return javaast.Edit{Start: last.Span.End, End: last.Span.End, Text: "\n" + indent + text}
}

// paramEdit places the tool-parameter annotation after the parameter's
// existing annotations, or in front of the parameter when it has none.
func paramEdit(p *javaast.Param, name string, doc *javaast.Javadoc) javaast.Edit {
	text := descriptionAnnotation(name, paramDescription(p, doc))
	if n := len(p.Annotations); n > 0 {
		end := p.Annotations[n-1].Span.End
		return javaast.Edit{Start: end, End: end, Text: " " + text}
	}
	return javaast.Edit{Start: p.Span.Start, End: p.Span.Start, Text: text + " "}
}
