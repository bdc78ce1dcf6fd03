package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/webtomcp/internal/qname"
)

// Model is the unified, format-agnostic representation of the application
// configuration.
type Model struct {
	Dependency     Coordinate
	Markers        Markers
	Server         ServerProperties
	PropertyPaths  []string
	AggregatorName string
	WorkerCount    int
}

// Coordinate is a build dependency identified by group and artifact.
type Coordinate struct {
	Group    string
	Artifact string
}

func (c Coordinate) String() string {
	return c.Group + ":" + c.Artifact
}

// Markers holds the fully qualified annotation and type names the engine
// reads and writes.
type Markers struct {
	Components      []string
	Endpoints       []string
	Tool            string
	ToolParam       string
	EntryPoint      string
	Provider        string
	ProviderBuilder string
	Bean            string
}

// All returns every name in the vocabulary.
func (m Markers) All() []string {
	out := append([]string{}, m.Components...)
	out = append(out, m.Endpoints...)
	return append(out, m.Tool, m.ToolParam, m.EntryPoint, m.Provider, m.ProviderBuilder, m.Bean)
}

// ServerProperties are the values merged under spring.ai.mcp.server.
type ServerProperties struct {
	Name               string
	Version            string
	Type               string
	SSEMessageEndpoint string
}

// Default returns the configuration used when no file is given.
func Default() *Model {
	return &Model{
		Dependency: Coordinate{
			Group:    "org.springframework.ai",
			Artifact: "spring-ai-starter-mcp-server-webmvc",
		},
		Markers: Markers{
			Components: []string{
				"org.springframework.stereotype.Controller",
				"org.springframework.stereotype.Component",
				"org.springframework.stereotype.Service",
				"org.springframework.stereotype.Repository",
				"org.springframework.web.bind.annotation.RestController",
			},
			Endpoints: []string{
				"org.springframework.web.bind.annotation.GetMapping",
				"org.springframework.web.bind.annotation.PostMapping",
				"org.springframework.web.bind.annotation.RequestMapping",
				"org.springframework.web.bind.annotation.PatchMapping",
				"org.springframework.web.bind.annotation.DeleteMapping",
				"org.springframework.web.bind.annotation.PutMapping",
			},
			Tool:            "org.springframework.ai.tool.annotation.Tool",
			ToolParam:       "org.springframework.ai.tool.annotation.ToolParam",
			EntryPoint:      "org.springframework.boot.autoconfigure.SpringBootApplication",
			Provider:        "org.springframework.ai.tool.ToolCallbackProvider",
			ProviderBuilder: "org.springframework.ai.tool.method.MethodToolCallbackProvider",
			Bean:            "org.springframework.context.annotation.Bean",
		},
		Server: ServerProperties{
			Name:               "webmvc-mcp-server",
			Version:            "1.0.0",
			Type:               "SYNC",
			SSEMessageEndpoint: "/mcp/messages",
		},
		PropertyPaths: []string{
			"**/application.yml",
			"**/application.yaml",
			"**/application.properties",
		},
		AggregatorName: "toolCallbackProvider",
		WorkerCount:    4,
	}
}

// Validate reports every problem found in the model.
func (m *Model) Validate() error {
	var errs []error
	if m.Dependency.Group == "" || m.Dependency.Artifact == "" {
		errs = append(errs, fmt.Errorf("dependency group and artifact must both be set, got %q", m.Dependency.String()))
	}
	if strings.ContainsAny(m.Dependency.Group+m.Dependency.Artifact, ": \t") {
		errs = append(errs, fmt.Errorf("dependency %q must not contain ':' or whitespace", m.Dependency.String()))
	}
	if len(m.Markers.Components) == 0 {
		errs = append(errs, errors.New("at least one component marker is required"))
	}
	if len(m.Markers.Endpoints) == 0 {
		errs = append(errs, errors.New("at least one endpoint marker is required"))
	}
	for _, name := range m.Markers.All() {
		if _, err := qname.Parse(name); err != nil {
			errs = append(errs, fmt.Errorf("invalid marker name %q: %w", name, err))
		}
	}
	if _, err := qname.Parse(m.AggregatorName); err != nil || strings.Contains(m.AggregatorName, ".") {
		errs = append(errs, fmt.Errorf("aggregator name %q is not a valid method name", m.AggregatorName))
	}
	if m.WorkerCount < 1 {
		errs = append(errs, fmt.Errorf("worker count must be at least 1, got %d", m.WorkerCount))
	}
	for _, p := range m.PropertyPaths {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, errors.New("property paths must not be empty"))
		}
	}
	return errors.Join(errs...)
}
