// Package toml_adapter loads the application configuration from TOML files.
// It accepts the same keys as the HCL format, with tables in place of
// blocks.
package toml_adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/specialistvlad/webtomcp/internal/config"
	"github.com/specialistvlad/webtomcp/internal/ctxlog"
)

// Loader is the TOML implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new TOML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

type fileConfig struct {
	WorkerCount    int      `toml:"worker_count"`
	AggregatorName string   `toml:"aggregator_name"`
	PropertyPaths  []string `toml:"property_paths"`
	Dependency     struct {
		Group    string `toml:"group"`
		Artifact string `toml:"artifact"`
	} `toml:"dependency"`
	Server struct {
		Name               string `toml:"name"`
		Version            string `toml:"version"`
		Type               string `toml:"type"`
		SSEMessageEndpoint string `toml:"sse_message_endpoint"`
	} `toml:"server"`
	Markers struct {
		Components      []string `toml:"components"`
		Endpoints       []string `toml:"endpoints"`
		Tool            string   `toml:"tool"`
		ToolParam       string   `toml:"tool_param"`
		EntryPoint      string   `toml:"entry_point"`
		Provider        string   `toml:"provider"`
		ProviderBuilder string   `toml:"provider_builder"`
		Bean            string   `toml:"bean"`
	} `toml:"markers"`
}

// Load decodes the TOML file at path on top of config.Default(). Unknown
// keys are rejected.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("TOML loader started.", "path", path)

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode TOML file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in TOML file %s: %s", path, strings.Join(keys, ", "))
	}

	m := config.Default()
	str := func(dst *string, v string, key ...string) {
		if meta.IsDefined(key...) {
			*dst = strings.TrimSpace(v)
		}
	}
	list := func(dst *[]string, v []string, key ...string) {
		if meta.IsDefined(key...) {
			*dst = append([]string(nil), v...)
		}
	}

	if meta.IsDefined("worker_count") {
		m.WorkerCount = raw.WorkerCount
	}
	str(&m.AggregatorName, raw.AggregatorName, "aggregator_name")
	list(&m.PropertyPaths, raw.PropertyPaths, "property_paths")
	str(&m.Dependency.Group, raw.Dependency.Group, "dependency", "group")
	str(&m.Dependency.Artifact, raw.Dependency.Artifact, "dependency", "artifact")
	str(&m.Server.Name, raw.Server.Name, "server", "name")
	str(&m.Server.Version, raw.Server.Version, "server", "version")
	str(&m.Server.Type, raw.Server.Type, "server", "type")
	str(&m.Server.SSEMessageEndpoint, raw.Server.SSEMessageEndpoint, "server", "sse_message_endpoint")
	list(&m.Markers.Components, raw.Markers.Components, "markers", "components")
	list(&m.Markers.Endpoints, raw.Markers.Endpoints, "markers", "endpoints")
	str(&m.Markers.Tool, raw.Markers.Tool, "markers", "tool")
	str(&m.Markers.ToolParam, raw.Markers.ToolParam, "markers", "tool_param")
	str(&m.Markers.EntryPoint, raw.Markers.EntryPoint, "markers", "entry_point")
	str(&m.Markers.Provider, raw.Markers.Provider, "markers", "provider")
	str(&m.Markers.ProviderBuilder, raw.Markers.ProviderBuilder, "markers", "provider_builder")
	str(&m.Markers.Bean, raw.Markers.Bean, "markers", "bean")

	logger.Debug("TOML loading complete.", "dependency", m.Dependency.String(), "workers", m.WorkerCount)
	return m, nil
}
