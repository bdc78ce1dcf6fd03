// internal/qname/parser.go
package qname

import (
	"fmt"
	"strings"
	"unicode"
)

// isIdentifier checks that a segment is a valid Java identifier.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// Parse creates a new Name by parsing its canonical dotted representation.
func Parse(raw string) (Name, error) {
	if raw == "" {
		return Name{}, fmt.Errorf("qualified name cannot be empty")
	}

	var n Name
	for _, segment := range strings.Split(raw, ".") {
		if segment == "" {
			return Name{}, fmt.Errorf("qualified name %q contains empty segment", raw)
		}
		if !isIdentifier(segment) {
			return Name{}, fmt.Errorf("invalid name segment %q in %q", segment, raw)
		}
		n.Segments = append(n.Segments, segment)
	}
	return n, nil
}

// MustParse is Parse for compile-time constants; it panics on invalid input.
func MustParse(raw string) Name {
	n, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return n
}
