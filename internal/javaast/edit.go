package javaast

import (
	"cmp"
	"slices"
	"strings"
)

// Edit replaces src[Start:End] with Text. An insertion has Start == End.
type Edit struct {
	Start int
	End   int
	Text  string
}

// ApplyEdits returns a copy of src with the edits applied. Edits must not
// overlap. They are applied back-to-front so earlier offsets stay valid;
// insertions at the same offset appear in the order they were listed.
func ApplyEdits(src []byte, edits []Edit) []byte {
	order := make([]int, len(edits))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		if c := cmp.Compare(edits[b].Start, edits[a].Start); c != 0 {
			return c
		}
		return cmp.Compare(b, a)
	})

	out := slices.Clone(src)
	for _, i := range order {
		e := edits[i]
		tail := slices.Clone(out[e.End:])
		out = append(append(out[:e.Start], e.Text...), tail...)
	}
	return out
}

// needsImport reports whether fqn must be imported before its simple name
// can be used in the file.
func (f *File) needsImport(fqn string) bool {
	pkg := packageOf(fqn)
	if pkg == "" || pkg == f.Package || pkg == "java.lang" {
		return false
	}
	for _, imp := range f.Imports {
		if imp.Static {
			continue
		}
		if (!imp.Wildcard && imp.Path == fqn) || (imp.Wildcard && imp.Path == pkg) {
			return false
		}
	}
	return true
}

// ImportEdits returns the insertions that make each of fqns visible by its
// simple name. Names already covered by the package, java.lang, an existing
// single-type or wildcard import are skipped, as are names whose simple form
// would clash with another visible type. New imports are placed before the
// first existing import that sorts after them.
func (f *File) ImportEdits(fqns []string, idx TypeIndex) []Edit {
	var missing []string
	for _, fqn := range fqns {
		if f.needsImport(fqn) && f.CanUseSimple(fqn, idx) && !slices.Contains(missing, fqn) {
			missing = append(missing, fqn)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)

	if len(f.Imports) == 0 {
		var sb strings.Builder
		for _, fqn := range missing {
			sb.WriteString("import " + fqn + ";\n")
		}
		if f.Package == "" {
			return []Edit{{Start: 0, End: 0, Text: sb.String() + "\n"}}
		}
		text := "\n\n" + strings.TrimSuffix(sb.String(), "\n")
		return []Edit{{Start: f.PackageSpan.End, End: f.PackageSpan.End, Text: text}}
	}

	last := f.Imports[len(f.Imports)-1]
	var edits []Edit
	for _, fqn := range missing {
		placed := false
		for _, imp := range f.Imports {
			if !imp.Static && imp.Path > fqn {
				at := lineStart(f.Src, imp.Span.Start)
				edits = append(edits, Edit{Start: at, End: at, Text: "import " + fqn + ";\n"})
				placed = true
				break
			}
		}
		if !placed {
			edits = append(edits, Edit{Start: last.Span.End, End: last.Span.End, Text: "\nimport " + fqn + ";"})
		}
	}
	return edits
}

// MemberIndent returns the indentation used for members of the class.
func (c *ClassDecl) MemberIndent() string {
	for _, m := range c.Methods {
		if m.Indent != "" {
			return m.Indent
		}
	}
	if c.Body != nil {
		return c.Body.CloseIndent + "    "
	}
	return "    "
}

// AppendMemberEdit returns the insertion that adds text as the last member
// of the class, separated from the preceding member by a blank line. text
// must already carry the member indentation on every line. The second
// result is false when the class has no body.
func (c *ClassDecl) AppendMemberEdit(src []byte, text string) (Edit, bool) {
	if c.Body == nil {
		return Edit{}, false
	}
	at := c.Body.Close - len(c.Body.CloseIndent)
	if at > 0 && src[at-1] == '\n' {
		return Edit{Start: at, End: at, Text: "\n" + text + "\n"}, true
	}
	return Edit{Start: c.Body.Close, End: c.Body.Close, Text: "\n" + text + "\n" + c.Body.CloseIndent}, true
}
