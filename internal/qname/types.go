// internal/qname/types.go
package qname

// Name is the structured representation of a qualified type name.
// It is modeled as a path of identifier segments; the last segment is the
// simple name.
type Name struct {
	Segments []string
}

// New builds a Name from already validated segments.
func New(segments ...string) Name {
	return Name{Segments: append([]string(nil), segments...)}
}

// IsZero reports whether the name has no segments.
func (n Name) IsZero() bool {
	return len(n.Segments) == 0
}
