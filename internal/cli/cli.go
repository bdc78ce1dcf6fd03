package cli

import (
	"cmp"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/webtomcp/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("webtomcp", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
webtomcp rewrites a Spring Web project so its endpoints are served as
Spring AI MCP tools. Nothing changes unless the project's pom.xml or
build.gradle(.kts) declares the MCP server starter.

Usage:
  webtomcp [options] PROJECT_DIR

Examples:
  webtomcp --dry-run ./shop
  webtomcp --config webtomcp.hcl --log-level debug ./shop

Options:
`)
		flagSet.PrintDefaults()
	}

	projectFlag := flagSet.String("project", "", "project `dir`; the first argument is used when unset")
	pFlag := flagSet.String("p", "", "same as -project")
	configFlag := flagSet.String("config", "", "settings `file` (.hcl or .toml) for markers, dependency and server properties")
	dryRunFlag := flagSet.Bool("dry-run", false, "print the paths that would change and leave the project as is")
	logFormatFlag := flagSet.String("log-format", "text", "log encoding: text or json")
	logLevelFlag := flagSet.String("log-level", "info", "lowest log level printed: debug, info, warn or error")
	workersFlag := flagSet.Int("workers", 0, "files processed at once; 0 keeps the settings file value")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := cmp.Or(*projectFlag, *pFlag, flagSet.Arg(0))
	slog.Debug("Project path determined.", "path", path)

	if path == "" {
		slog.Debug("No project path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		ProjectPath: path,
		ConfigPath:  *configFlag,
		DryRun:      *dryRunFlag,
		LogFormat:   strings.ToLower(*logFormatFlag),
		LogLevel:    strings.ToLower(*logLevelFlag),
		WorkerCount: *workersFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
