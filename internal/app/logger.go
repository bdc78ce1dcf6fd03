package app

import (
	"fmt"
	"io"
	"log/slog"
)

// parseLogLevel accepts the names understood by slog ("debug", "info",
// "warn", "error", optionally with an offset such as "info+2"). An empty
// string means info.
func parseLogLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", s)
	}
	return level, nil
}

// newHandler returns the slog handler for the output format. An empty
// format means text.
func newHandler(format string, outW io.Writer, opts *slog.HandlerOptions) (slog.Handler, error) {
	switch format {
	case "", "text":
		return slog.NewTextHandler(outW, opts), nil
	case "json":
		return slog.NewJSONHandler(outW, opts), nil
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", format)
	}
}

// newLogger builds an isolated logger writing to outW. It does not touch
// the global logger.
func newLogger(levelStr, formatStr string, outW io.Writer) (*slog.Logger, error) {
	level, err := parseLogLevel(levelStr)
	if err != nil {
		return nil, err
	}
	handler, err := newHandler(formatStr, outW, &slog.HandlerOptions{Level: level})
	if err != nil {
		return nil, err
	}
	return slog.New(handler), nil
}
