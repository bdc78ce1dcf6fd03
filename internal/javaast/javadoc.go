package javaast

import (
	"regexp"
	"strings"
	"unicode"
)

// Javadoc is a parsed documentation comment.
type Javadoc struct {
	// Summary holds the free-text lines that precede the first block tag.
	Summary []string
	Tags    []*DocTag
	Span    Span
}

// DocTag is a block tag such as `@param name text` or `@return text`. Arg is
// set for @param, @throws and @exception.
type DocTag struct {
	Name  string
	Arg   string
	Lines []string
}

var (
	inlineTag = regexp.MustCompile(`\{@(?:code|literal|linkplain|link|value)\s*([^}]*)\}`)
	htmlTag   = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9]*(?:\s[^<>]*)?/?>`)
)

var tagsWithArg = map[string]bool{"param": true, "throws": true, "exception": true}

func parseJavadoc(raw *rawDoc) *Javadoc {
	if raw == nil {
		return nil
	}
	body := strings.TrimPrefix(raw.text, "/**")
	body = strings.TrimSuffix(body, "*/")

	doc := &Javadoc{Span: raw.span}
	var current *DocTag
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, " \t\r")
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "*") {
			trimmed = strings.TrimLeft(strings.TrimPrefix(trimmed, "*"), " \t")
		}
		if strings.HasPrefix(trimmed, "@") {
			current = newDocTag(trimmed[1:])
			doc.Tags = append(doc.Tags, current)
			continue
		}
		text := renderInline(trimmed)
		if current != nil {
			current.Lines = append(current.Lines, text)
		} else {
			doc.Summary = append(doc.Summary, text)
		}
	}
	return doc
}

func newDocTag(s string) *DocTag {
	name, rest := cutSpace(s)
	tag := &DocTag{Name: name}
	if tagsWithArg[name] {
		tag.Arg, rest = cutSpace(rest)
	}
	tag.Lines = []string{renderInline(rest)}
	return tag
}

// cutSpace splits s around its first run of whitespace.
func cutSpace(s string) (string, string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

// renderInline replaces inline tags with their text and strips HTML markup.
func renderInline(s string) string {
	s = inlineTag.ReplaceAllStringFunc(s, func(m string) string {
		inner := strings.TrimSpace(inlineTag.FindStringSubmatch(m)[1])
		if strings.HasPrefix(m, "{@link") {
			// {@link Type#member label} renders as the label when present.
			if _, label, ok := strings.Cut(inner, " "); ok {
				return strings.TrimSpace(label)
			}
			return strings.TrimPrefix(strings.ReplaceAll(inner, "#", "."), ".")
		}
		return inner
	})
	return htmlTag.ReplaceAllString(s, "")
}

// joinText comma-joins the non-empty trimmed lines.
func joinText(lines []string) string {
	var parts []string
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, ", ")
}

// Description returns the summary text with its non-empty lines joined by
// ", ".
func (d *Javadoc) Description() string {
	if d == nil {
		return ""
	}
	return joinText(d.Summary)
}

// ParamDescription returns the text of the @param entry naming the
// parameter. The second result reports whether such an entry exists.
func (d *Javadoc) ParamDescription(name string) (string, bool) {
	if d == nil {
		return "", false
	}
	for _, t := range d.Tags {
		if t.Name == "param" && t.Arg == name {
			return joinText(t.Lines), true
		}
	}
	return "", false
}
