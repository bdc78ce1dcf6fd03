package propmerge

import (
	"strings"
)

// mergeProperties inserts each missing key of kv into a .properties
// document. A new key goes before the first existing key that sorts after
// it, or at the end. The second result is false when nothing was added.
func mergeProperties(src string, kv []keyValue) (string, bool) {
	lines := strings.SplitAfter(src, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if n := len(lines); n > 0 && !strings.HasSuffix(lines[n-1], "\n") {
		lines[n-1] += "\n"
	}

	added := false
	for _, p := range kv {
		keys := propertyKeys(lines)
		at := len(lines)
		found := false
		for i, k := range keys {
			if k == "" {
				continue
			}
			if k == p.Key {
				found = true
				break
			}
			if k > p.Key && at == len(lines) {
				at = i
			}
		}
		if found {
			continue
		}
		entry := p.Key + "=" + escapeValue(p.Value) + "\n"
		lines = append(lines[:at], append([]string{entry}, lines[at:]...)...)
		added = true
	}
	if !added {
		return src, false
	}
	return strings.Join(lines, ""), true
}

// propertyKeys returns the key defined on each line, or "" for comments,
// blank lines and continuation lines.
func propertyKeys(lines []string) []string {
	keys := make([]string, len(lines))
	continued := false
	for i, line := range lines {
		body := strings.TrimRight(line, "\r\n")
		if continued {
			continued = endsWithContinuation(body)
			continue
		}
		trimmed := strings.TrimLeft(body, " \t\f")
		if trimmed == "" || trimmed[0] == '#' || trimmed[0] == '!' {
			continue
		}
		keys[i] = propertyKey(trimmed)
		continued = endsWithContinuation(body)
	}
	return keys
}

// propertyKey reads the key at the start of a logical line, honouring
// backslash escapes.
func propertyKey(line string) string {
	var sb strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '\\' && i+1 < len(line):
			i++
			sb.WriteByte(line[i])
		case c == '=' || c == ':' || c == ' ' || c == '\t' || c == '\f':
			return sb.String()
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func endsWithContinuation(line string) bool {
	n := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

func escapeValue(v string) string {
	r := strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`, "\t", `\t`)
	v = r.Replace(v)
	if strings.HasPrefix(v, " ") {
		v = `\` + v
	}
	return v
}
