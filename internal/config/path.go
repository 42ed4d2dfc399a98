// ABOUTME: Journal path resolution: flag, project file, user config, then ~/journal.json
// ABOUTME: Fails with ErrHomeDirectoryUnavailable when the default cannot be built
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harper/journal/internal/journal"
)

// JournalFileName is the default journal file under the home directory.
const JournalFileName = "journal.json"

// homeDir wraps os.UserHomeDir with the journal error taxonomy.
func homeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", journal.ErrHomeDirectoryUnavailable, err)
	}
	if home == "" {
		return "", journal.ErrHomeDirectoryUnavailable
	}
	return home, nil
}

// DefaultJournalPath returns <home>/journal.json.
func DefaultJournalPath() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, JournalFileName), nil
}

// ExpandPath expands a leading "~/" and makes the path absolute.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := homeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path for %q: %w", path, err)
	}
	return abs, nil
}

// PathSources are the places a journal path can come from, highest priority first.
type PathSources struct {
	Flag        string
	ProjectRoot string
	Project     *ProjectConfig
	User        *Config
}

// ResolveJournalPath picks the journal file from the first source that names one.
func ResolveJournalPath(src PathSources) (string, error) {
	switch {
	case src.Flag != "":
		return ExpandPath(src.Flag)
	case src.Project != nil && src.ProjectRoot != "":
		return ExpandPath(src.Project.JournalPath(src.ProjectRoot))
	case src.User != nil && src.User.Path != "":
		return ExpandPath(src.User.Path)
	default:
		return DefaultJournalPath()
	}
}
