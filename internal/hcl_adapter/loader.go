// Package hcl_adapter loads the application configuration from HCL files.
package hcl_adapter

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/webtomcp/internal/config"
	"github.com/specialistvlad/webtomcp/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// Environ supplies the variables exposed as `env.*`. Defaults to
	// os.Environ.
	Environ func() []string
}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{Environ: os.Environ}
}

// fileRoot is the top-level schema of a configuration file. Every attribute
// and block is optional; unset values keep their defaults.
type fileRoot struct {
	WorkerCount    *int             `hcl:"worker_count,optional"`
	AggregatorName *string          `hcl:"aggregator_name,optional"`
	PropertyPaths  *[]string        `hcl:"property_paths,optional"`
	Dependency     *dependencyBlock `hcl:"dependency,block"`
	Server         *serverBlock     `hcl:"server,block"`
	Markers        *markersBlock    `hcl:"markers,block"`
}

type dependencyBlock struct {
	Group    *string `hcl:"group,optional"`
	Artifact *string `hcl:"artifact,optional"`
}

type serverBlock struct {
	Name               *string `hcl:"name,optional"`
	Version            *string `hcl:"version,optional"`
	Type               *string `hcl:"type,optional"`
	SSEMessageEndpoint *string `hcl:"sse_message_endpoint,optional"`
}

type markersBlock struct {
	Components      *[]string `hcl:"components,optional"`
	Endpoints       *[]string `hcl:"endpoints,optional"`
	Tool            *string   `hcl:"tool,optional"`
	ToolParam       *string   `hcl:"tool_param,optional"`
	EntryPoint      *string   `hcl:"entry_point,optional"`
	Provider        *string   `hcl:"provider,optional"`
	ProviderBuilder *string   `hcl:"provider_builder,optional"`
	Bean            *string   `hcl:"bean,optional"`
}

// Load parses and decodes the HCL file at path on top of config.Default().
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, l.evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	model := config.Default()
	root.apply(model)
	logger.Debug("HCL loading complete.", "dependency", model.Dependency.String(), "workers", model.WorkerCount)
	return model, nil
}

func (l *Loader) evalContext() *hcl.EvalContext {
	environ := l.Environ
	if environ == nil {
		environ = os.Environ
	}
	return &hcl.EvalContext{
		Variables: envVariables(environ()),
	}
}

func (r *fileRoot) apply(m *config.Model) {
	setInt(&m.WorkerCount, r.WorkerCount)
	setString(&m.AggregatorName, r.AggregatorName)
	setList(&m.PropertyPaths, r.PropertyPaths)
	if d := r.Dependency; d != nil {
		setString(&m.Dependency.Group, d.Group)
		setString(&m.Dependency.Artifact, d.Artifact)
	}
	if s := r.Server; s != nil {
		setString(&m.Server.Name, s.Name)
		setString(&m.Server.Version, s.Version)
		setString(&m.Server.Type, s.Type)
		setString(&m.Server.SSEMessageEndpoint, s.SSEMessageEndpoint)
	}
	if mk := r.Markers; mk != nil {
		setList(&m.Markers.Components, mk.Components)
		setList(&m.Markers.Endpoints, mk.Endpoints)
		setString(&m.Markers.Tool, mk.Tool)
		setString(&m.Markers.ToolParam, mk.ToolParam)
		setString(&m.Markers.EntryPoint, mk.EntryPoint)
		setString(&m.Markers.Provider, mk.Provider)
		setString(&m.Markers.ProviderBuilder, mk.ProviderBuilder)
		setString(&m.Markers.Bean, mk.Bean)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setList(dst *[]string, v *[]string) {
	if v != nil {
		*dst = append([]string(nil), (*v)...)
	}
}
