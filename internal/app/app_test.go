package app

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/specialistvlad/webtomcp/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Config{})
	assert.Error(t, err)

	_, err = NewConfig(Config{ProjectPath: ".", ConfigPath: "cfg.yaml"})
	assert.ErrorContains(t, err, "unsupported config file")

	_, err = NewConfig(Config{ProjectPath: ".", WorkerCount: -1})
	assert.Error(t, err)

	cfg, err := NewConfig(Config{ProjectPath: ".", ConfigPath: "cfg.TOML"})
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.ProjectPath)
}

func TestNewConfig_LogOptions(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr string
	}{
		{name: "defaults", level: "", format: ""},
		{name: "json at warn", level: "warn", format: "json"},
		{name: "level offset", level: "info+2", format: "text"},
		{name: "unknown level", level: "verbose", format: "text", wantErr: "invalid log level"},
		{name: "unknown format", level: "info", format: "yaml", wantErr: "invalid log format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(Config{ProjectPath: ".", LogLevel: tt.level, LogFormat: tt.format})
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewApp_LogLevel(t *testing.T) {
	_, err := NewApp(io.Discard, &Config{ProjectPath: ".", LogLevel: "loud"}, nil)
	assert.ErrorContains(t, err, "invalid log level")

	var buf bytes.Buffer
	a, err := NewApp(&buf, &Config{ProjectPath: ".", LogLevel: "warn", LogFormat: "json"}, nil)
	require.NoError(t, err)
	a.logger.Info("Hidden.")
	a.logger.Warn("Shown.")
	assert.NotContains(t, buf.String(), "Hidden.")
	assert.Contains(t, buf.String(), `"msg":"Shown."`)
}

func TestLoadConfig(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"webtomcp.hcl": `
worker_count = 2
server {
  name = "svc"
}
`,
		"webtomcp.toml": "aggregator_name = \"tools\"\n",
	})

	tests := []struct {
		name    string
		cfg     Config
		check   func(t *testing.T, app *App)
		wantErr string
	}{
		{
			name: "defaults",
			cfg:  Config{ProjectPath: root},
			check: func(t *testing.T, app *App) {
				cfg, err := app.LoadConfig(app.context(context.Background()))
				require.NoError(t, err)
				assert.Equal(t, 4, cfg.WorkerCount)
			},
		},
		{
			name: "hcl file with flag override",
			cfg:  Config{ProjectPath: root, ConfigPath: root + "/webtomcp.hcl", WorkerCount: 8},
			check: func(t *testing.T, app *App) {
				cfg, err := app.LoadConfig(app.context(context.Background()))
				require.NoError(t, err)
				assert.Equal(t, 8, cfg.WorkerCount)
				assert.Equal(t, "svc", cfg.Server.Name)
			},
		},
		{
			name: "toml file",
			cfg:  Config{ProjectPath: root, ConfigPath: root + "/webtomcp.toml"},
			check: func(t *testing.T, app *App) {
				cfg, err := app.LoadConfig(app.context(context.Background()))
				require.NoError(t, err)
				assert.Equal(t, "tools", cfg.AggregatorName)
			},
		},
		{
			name: "missing file",
			cfg:  Config{ProjectPath: root, ConfigPath: root + "/nope.hcl"},
			check: func(t *testing.T, app *App) {
				_, err := app.LoadConfig(app.context(context.Background()))
				assert.ErrorContains(t, err, "failed to load configuration")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			app, _ := SetupAppTest(t, &cfg)
			tt.check(t, app)
		})
	}
}

func TestNewLogger(t *testing.T) {
	buf := &testutil.SafeBuffer{}
	logger, err := newLogger("warn", "json", buf)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}
