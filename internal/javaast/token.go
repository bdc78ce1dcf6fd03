package javaast

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// tokenKind classifies a lexical token.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokChar
	tokNumber
	tokPunct
)

// token is one lexical unit. Pos and End are byte offsets into the source.
// Doc holds the javadoc comment that appeared between the previous token and
// this one, if any.
type token struct {
	kind tokenKind
	text string
	pos  int
	end  int
	doc  *rawDoc
}

// rawDoc is an unparsed `/** ... */` comment.
type rawDoc struct {
	text string
	span Span
}

func (t token) is(text string) bool {
	return (t.kind == tokPunct || t.kind == tokIdent) && t.text == text
}

// lex splits src into tokens. Comments are dropped except javadoc, which is
// attached to the following token.
func lex(src []byte) ([]token, error) {
	var (
		toks    []token
		pending *rawDoc
		i       int
	)
	n := len(src)
	for i < n {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f':
			i++
		case c == '/' && i+1 < n && src[i+1] == '/':
			for i < n && src[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < n && src[i+1] == '*':
			start := i
			end := indexFrom(src, i+2, "*/")
			if end < 0 {
				return nil, fmt.Errorf("unterminated comment at offset %d", start)
			}
			i = end + 2
			if i-start >= 5 && src[start+2] == '*' {
				pending = &rawDoc{text: string(src[start:i]), span: Span{Start: start, End: i}}
			}
		case c == '"':
			start := i
			end, err := scanString(src, i)
			if err != nil {
				return nil, err
			}
			i = end
			toks = append(toks, token{kind: tokString, text: string(src[start:i]), pos: start, end: i, doc: pending})
			pending = nil
		case c == '\'':
			start := i
			i++
			for i < n && src[i] != '\'' {
				if src[i] == '\\' {
					i++
				}
				i++
			}
			if i >= n {
				return nil, fmt.Errorf("unterminated character literal at offset %d", start)
			}
			i++
			toks = append(toks, token{kind: tokChar, text: string(src[start:i]), pos: start, end: i, doc: pending})
			pending = nil
		case c >= '0' && c <= '9':
			start := i
			for i < n && (isIdentByte(src[i]) || src[i] == '.') {
				i++
			}
			toks = append(toks, token{kind: tokNumber, text: string(src[start:i]), pos: start, end: i, doc: pending})
			pending = nil
		case c == '.' && i+2 < n && src[i+1] == '.' && src[i+2] == '.':
			toks = append(toks, token{kind: tokPunct, text: "...", pos: i, end: i + 3, doc: pending})
			pending = nil
			i += 3
		default:
			r, size := utf8.DecodeRune(src[i:])
			if r == '_' || r == '$' || unicode.IsLetter(r) {
				start := i
				for i < n {
					r, size = utf8.DecodeRune(src[i:])
					if r != '_' && r != '$' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
						break
					}
					i += size
				}
				toks = append(toks, token{kind: tokIdent, text: string(src[start:i]), pos: start, end: i, doc: pending})
				pending = nil
				continue
			}
			toks = append(toks, token{kind: tokPunct, text: string(src[i : i+size]), pos: i, end: i + size, doc: pending})
			pending = nil
			i += size
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: n, end: n, doc: pending})
	return toks, nil
}

// scanString returns the offset just past the string literal or text block
// starting at src[i].
func scanString(src []byte, i int) (int, error) {
	start := i
	n := len(src)
	if i+2 < n && src[i+1] == '"' && src[i+2] == '"' {
		i += 3
		for i < n {
			if src[i] == '\\' {
				i += 2
				continue
			}
			if i+2 < n && src[i] == '"' && src[i+1] == '"' && src[i+2] == '"' {
				return i + 3, nil
			}
			i++
		}
		return 0, fmt.Errorf("unterminated text block at offset %d", start)
	}
	i++
	for i < n && src[i] != '"' {
		if src[i] == '\\' {
			i++
		} else if src[i] == '\n' {
			return 0, fmt.Errorf("unterminated string literal at offset %d", start)
		}
		i++
	}
	if i >= n {
		return 0, fmt.Errorf("unterminated string literal at offset %d", start)
	}
	return i + 1, nil
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func indexFrom(src []byte, from int, needle string) int {
	for i := from; i+len(needle) <= len(src); i++ {
		if string(src[i:i+len(needle)]) == needle {
			return i
		}
	}
	return -1
}
