package descriptor

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/webtomcp/internal/config"
)

// GradleScanner looks for a dependency in a Groovy or Kotlin build script.
// It recognises, inside any `dependencies { }` block outside `buildscript`:
//
//	implementation 'g:a:v'
//	implementation("g:a:v")
//	implementation(platform("g:a:v"))
//	implementation group: 'g', name: 'a', version: 'v'
//	implementation(group = "g", name = "a")
type GradleScanner struct {
	coord config.Coordinate
}

// NewGradleScanner creates a scanner for the given coordinate.
func NewGradleScanner(coord config.Coordinate) *GradleScanner {
	return &GradleScanner{coord: coord}
}

type gtokKind int

const (
	gIdent gtokKind = iota
	gString
	gPunct
)

type gtok struct {
	kind gtokKind
	text string // unquoted for strings
	line int
}

// Scan reports whether the script declares the coordinate.
func (s *GradleScanner) Scan(content []byte) (bool, error) {
	toks, err := lexGradle(string(content))
	if err != nil {
		return false, err
	}
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.kind != gIdent || i+1 >= len(toks) || toks[i+1].text != "{" {
			continue
		}
		switch t.text {
		case "buildscript":
			i = matchClose(toks, i+1)
		case "dependencies":
			end := matchClose(toks, i+1)
			if s.scanBlock(toks[i+2 : end]) {
				return true, nil
			}
			i = end
		}
	}
	return false, nil
}

// scanBlock inspects the call expressions of one dependencies block.
func (s *GradleScanner) scanBlock(toks []gtok) bool {
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.kind != gIdent || i+1 >= len(toks) {
			continue
		}
		next := toks[i+1]
		var args []gtok
		switch {
		case next.text == "(":
			end := matchCloseOf(toks, i+1, "(", ")")
			args = toks[i+2 : end]
			i = end
		case next.kind == gString || (next.kind == gIdent && next.line == t.line):
			j := i + 1
			for j < len(toks) && (toks[j].line == toks[j-1].line || toks[j-1].text == ",") && toks[j].text != "}" && toks[j].text != ";" {
				j++
			}
			args = toks[i+1 : j]
			i = j - 1
		default:
			continue
		}
		if s.matchArgs(args) {
			return true
		}
	}
	return false
}

func (s *GradleScanner) matchArgs(args []gtok) bool {
	var group, name string
	for i, a := range args {
		if a.kind == gString && matchesCoordinate(a.text, s.coord.Group, s.coord.Artifact) {
			return true
		}
		if a.kind == gIdent && i+2 < len(args) && (args[i+1].text == ":" || args[i+1].text == "=") && args[i+2].kind == gString {
			switch a.text {
			case "group":
				group = args[i+2].text
			case "name":
				name = args[i+2].text
			}
		}
	}
	return group == s.coord.Group && name == s.coord.Artifact
}

// matchClose returns the index of the `}` closing the `{` at open, or the
// last index when the block is unterminated.
func matchClose(toks []gtok, open int) int {
	return matchCloseOf(toks, open, "{", "}")
}

func matchCloseOf(toks []gtok, open int, o, c string) int {
	depth := 0
	for i := open; i < len(toks); i++ {
		switch toks[i].text {
		case o:
			if toks[i].kind == gPunct {
				depth++
			}
		case c:
			if toks[i].kind == gPunct {
				depth--
				if depth == 0 {
					return i
				}
			}
		}
	}
	return len(toks)
}

// lexGradle splits a build script into identifiers, string literals and
// punctuation. Comments are dropped; numbers and other literals become
// identifiers, which is enough for locating call arguments.
func lexGradle(src string) ([]gtok, error) {
	var toks []gtok
	line := 1
	n := len(src)
	for i := 0; i < n; {
		c := src[i]
		switch {
		case c == '\n':
			line++
			i++
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case strings.HasPrefix(src[i:], "//"):
			for i < n && src[i] != '\n' {
				i++
			}
		case strings.HasPrefix(src[i:], "/*"):
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return nil, fmt.Errorf("unterminated comment on line %d", line)
			}
			line += strings.Count(src[i:i+2+end], "\n")
			i += end + 4
		case c == '"' || c == '\'':
			quote := src[i : i+1]
			if strings.HasPrefix(src[i:], quote+quote+quote) {
				quote = quote + quote + quote
			}
			start := i + len(quote)
			j := start
			for j < n && !strings.HasPrefix(src[j:], quote) {
				if src[j] == '\\' {
					j++
				} else if src[j] == '\n' && len(quote) == 1 {
					return nil, fmt.Errorf("unterminated string on line %d", line)
				}
				j++
			}
			if j >= n {
				return nil, fmt.Errorf("unterminated string on line %d", line)
			}
			toks = append(toks, gtok{kind: gString, text: src[start:j], line: line})
			line += strings.Count(src[i:j], "\n")
			i = j + len(quote)
		case isGradleIdent(c):
			j := i
			for j < n && (isGradleIdent(src[j]) || src[j] == '.' && j+1 < n && isGradleIdent(src[j+1])) {
				j++
			}
			toks = append(toks, gtok{kind: gIdent, text: src[i:j], line: line})
			i = j
		default:
			toks = append(toks, gtok{kind: gPunct, text: src[i : i+1], line: line})
			i++
		}
	}
	return toks, nil
}

func isGradleIdent(c byte) bool {
	return c == '_' || c == '$' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c >= 0x80
}
