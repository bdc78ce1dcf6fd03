// internal/qname/name.go
package qname

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// String serializes the Name into its canonical dotted form.
func (n Name) String() string {
	return strings.Join(n.Segments, ".")
}

// Simple returns the last segment.
func (n Name) Simple() string {
	if n.IsZero() {
		return ""
	}
	return n.Segments[len(n.Segments)-1]
}

// Package returns everything before the simple name. For nested types this
// includes the enclosing type names.
func (n Name) Package() string {
	if len(n.Segments) < 2 {
		return ""
	}
	return strings.Join(n.Segments[:len(n.Segments)-1], ".")
}

// Equal checks segment-wise equality.
func (n Name) Equal(other Name) bool {
	return slices.Equal(n.Segments, other.Segments)
}

// VariableName derives a local variable name from the simple name by
// lowercasing its first rune: HelloController -> helloController.
func (n Name) VariableName() string {
	return LowerFirst(n.Simple())
}

// LowerFirst lowercases the first rune of s.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
