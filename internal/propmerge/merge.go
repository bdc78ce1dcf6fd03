package propmerge

import (
	"context"
	"strings"

	"github.com/specialistvlad/webtomcp/internal/config"
	"github.com/specialistvlad/webtomcp/internal/ctxlog"
	"github.com/specialistvlad/webtomcp/internal/model"
	"github.com/specialistvlad/webtomcp/internal/session"
)

const prefix = "spring.ai.mcp.server"

type keyValue struct {
	Key   string
	Value string
}

// Merger writes the server settings into matching configuration files.
type Merger struct {
	server  config.ServerProperties
	matcher *pathMatcher
}

// New creates a merger for the server settings and path globs.
func New(server config.ServerProperties, paths []string) (*Merger, error) {
	m, err := newPathMatcher(paths)
	if err != nil {
		return nil, err
	}
	return &Merger{server: server, matcher: m}, nil
}

func (m *Merger) values() []keyValue {
	return []keyValue{
		{Key: "name", Value: m.server.Name},
		{Key: "version", Value: m.server.Version},
		{Key: "type", Value: m.server.Type},
		{Key: "sse-message-endpoint", Value: m.server.SSEMessageEndpoint},
	}
}

// Merge updates every matching properties and YAML file and returns how
// many files changed. It does nothing unless the run's flag is set. A YAML
// file that cannot be decoded is skipped.
func (m *Merger) Merge(ctx context.Context, run *session.Run, forest *model.Forest) int {
	logger := ctxlog.FromContext(ctx)
	if !run.Flag.Enabled() {
		logger.Debug("Feature flag not set, skipping property merge.")
		return 0
	}

	changed := 0
	for _, u := range forest.Units() {
		if !m.matcher.Match(u.Path) {
			continue
		}
		switch u.Format {
		case model.FormatProperties:
			kv := m.values()
			for i := range kv {
				kv[i].Key = prefix + "." + kv[i].Key
			}
			out, ok := mergeProperties(string(u.Content()), kv)
			if !ok {
				continue
			}
			u.SetContent([]byte(out))
		case model.FormatYAML:
			out, ok, err := mergeYAML(u.Content(), strings.Split(prefix, "."), m.values())
			if err != nil {
				logger.Warn("Skipping unreadable YAML file.", "path", u.Path, "error", err)
				continue
			}
			if !ok {
				continue
			}
			u.SetContent(out)
		default:
			continue
		}
		changed++
		logger.Info("Merged MCP server properties.", "path", u.Path)
	}
	return changed
}
