// ABOUTME: Structured stderr logger shared by the CLI and MCP server
// ABOUTME: Wraps charmbracelet/log with level parsing from config
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the named level. Verbose forces debug.
func New(w io.Writer, level string, verbose bool) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "journal",
		Level:           lvl,
		ReportTimestamp: false,
	})
	return logger, nil
}

// ParseLevel maps a config level name to a log level. Empty means warn.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "", "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", level)
	}
}
