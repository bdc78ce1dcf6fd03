package propmerge

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// mergeYAML adds the missing keys of kv under path in the first document.
// A key counts as present whether it is written nested or in dotted form
// (`spring.ai.mcp.server.name: x`). Existing keys and non-mapping values on
// the way are left alone. The documents are re-encoded only when something
// was added.
func mergeYAML(src []byte, path []string, kv []keyValue) ([]byte, bool, error) {
	var docs []*yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(src))
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, false, fmt.Errorf("decode yaml: %w", err)
		}
		docs = append(docs, &doc)
	}
	if len(docs) == 0 {
		docs = append(docs, &yaml.Node{Kind: yaml.DocumentNode})
	}

	first := docs[0]
	if len(first.Content) == 0 {
		first.Content = []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}
	}
	target := first.Content[0]
	if target.Kind != yaml.MappingNode {
		return src, false, nil
	}

	var missing []keyValue
	for _, p := range kv {
		full := append(append([]string(nil), path...), p.Key)
		if !hasProperty(target, full) {
			missing = append(missing, p)
		}
	}
	if len(missing) == 0 {
		return src, false, nil
	}

	for _, key := range path {
		next := lookup(target, key)
		if next == nil {
			next = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			target.Content = append(target.Content, scalar(key), next)
		}
		if next.Kind != yaml.MappingNode {
			return src, false, nil
		}
		target = next
	}

	added := false
	for _, p := range missing {
		if lookup(target, p.Key) != nil {
			continue
		}
		target.Content = append(target.Content, scalar(p.Key), scalar(p.Value))
		added = true
	}
	if !added {
		return src, false, nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	for _, doc := range docs {
		if err := enc.Encode(doc); err != nil {
			return nil, false, fmt.Errorf("encode yaml: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return nil, false, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), true, nil
}

// lookup returns the value node stored under key in a mapping node.
func lookup(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// hasProperty reports whether the mapping holds the property named by
// segments, following both nested mappings and keys that spell several
// segments joined by dots.
func hasProperty(m *yaml.Node, segments []string) bool {
	if m.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		keySegs := strings.Split(m.Content[i].Value, ".")
		if len(keySegs) > len(segments) || !slices.Equal(keySegs, segments[:len(keySegs)]) {
			continue
		}
		rest := segments[len(keySegs):]
		if len(rest) == 0 || hasProperty(m.Content[i+1], rest) {
			return true
		}
	}
	return false
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
