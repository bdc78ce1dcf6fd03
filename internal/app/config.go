package app

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/webtomcp/internal/config"
	"github.com/specialistvlad/webtomcp/internal/hcl_adapter"
	"github.com/specialistvlad/webtomcp/internal/toml_adapter"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProjectPath string
	ConfigPath  string // .hcl or .toml, optional

	DryRun      bool
	LogFormat   string
	LogLevel    string
	WorkerCount int // 0 keeps the value from the config file
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProjectPath == "" {
		return nil, errors.New("ProjectPath is a required configuration field and cannot be empty")
	}
	if cfg.WorkerCount < 0 {
		return nil, fmt.Errorf("worker count must not be negative, got %d", cfg.WorkerCount)
	}
	if cfg.ConfigPath != "" {
		if _, err := loaderForPath(cfg.ConfigPath); err != nil {
			return nil, err
		}
	}
	if _, err := newLogger(cfg.LogLevel, cfg.LogFormat, io.Discard); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loaderForPath picks the configuration adapter by file extension.
func loaderForPath(path string) (config.Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hcl_adapter.NewLoader(), nil
	case ".toml":
		return toml_adapter.NewLoader(), nil
	default:
		return nil, fmt.Errorf("unsupported config file %q: expected .hcl or .toml", path)
	}
}
