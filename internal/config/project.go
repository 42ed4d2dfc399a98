// ABOUTME: Project .journal file detection and config loading
// ABOUTME: Walks directory tree to find a project-specific journal
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ProjectFileName marks a directory tree that keeps its own journal.
const ProjectFileName = ".journal"

// ProjectConfig is the content of a .journal file.
type ProjectConfig struct {
	// Path is the journal file, relative to the project root unless absolute.
	Path   string `toml:"path"`
	Format string `toml:"format"`
}

// FindProjectRoot walks up from dir looking for a .journal file.
// Returns empty string if not found
func FindProjectRoot(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	// Without a home directory the walk only stops at the filesystem root.
	homeDir, _ := os.UserHomeDir()

	current := absDir
	for {
		marker := filepath.Join(current, ProjectFileName)
		if info, err := os.Stat(marker); err == nil && !info.IsDir() {
			return current, nil
		}

		parent := filepath.Dir(current)

		// Stop at filesystem root or home directory
		if parent == current || (homeDir != "" && current == homeDir) {
			return "", nil
		}

		current = parent
	}
}

// LoadProjectConfig loads a .journal config from path
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	var cfg ProjectConfig

	// Set defaults
	cfg.Path = "journal.json"

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// JournalPath returns the project journal location under root.
func (c *ProjectConfig) JournalPath(root string) string {
	if filepath.IsAbs(c.Path) {
		return c.Path
	}
	return filepath.Join(root, c.Path)
}
