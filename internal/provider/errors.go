package provider

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCardinality is wrapped by every CardinalityError.
var ErrCardinality = errors.New("more than one provider method in entry-point class")

// CardinalityError names an entry-point class holding more than one provider
// method, with the offending method names and their 1-based lines.
type CardinalityError struct {
	Path    string
	Class   string
	Methods []string
	Lines   []int
}

func (e *CardinalityError) Error() string {
	locs := make([]string, len(e.Methods))
	for i, m := range e.Methods {
		locs[i] = fmt.Sprintf("%s (line %d)", m, e.Lines[i])
	}
	return fmt.Sprintf("%s: class %s: %s: %s", e.Path, e.Class, ErrCardinality, strings.Join(locs, ", "))
}

func (e *CardinalityError) Unwrap() error {
	return ErrCardinality
}
