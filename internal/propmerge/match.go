package propmerge

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// pathMatcher reports whether a slash-separated path matches any of a set
// of globs. A leading "**/" also matches files at the root.
type pathMatcher struct {
	globs []glob.Glob
}

func newPathMatcher(patterns []string) (*pathMatcher, error) {
	m := &pathMatcher{}
	for _, p := range patterns {
		variants := []string{p}
		if rest, ok := strings.CutPrefix(p, "**/"); ok {
			variants = append(variants, rest)
		}
		for _, v := range variants {
			g, err := glob.Compile(v, '/')
			if err != nil {
				return nil, fmt.Errorf("invalid property path %q: %w", p, err)
			}
			m.globs = append(m.globs, g)
		}
	}
	return m, nil
}

func (m *pathMatcher) Match(path string) bool {
	for _, g := range m.globs {
		if g.Match(path) {
			return true
		}
	}
	return false
}
