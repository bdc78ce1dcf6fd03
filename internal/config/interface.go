package config

import (
	"context"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the configuration file at path and overlays the values it
	// sets onto Default().
	Load(ctx context.Context, path string) (*Model, error)
}
