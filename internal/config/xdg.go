// ABOUTME: XDG Base Directory helpers for the user config file
// ABOUTME: Resolves the config directory with a ~/.config fallback
package config

import (
	"os"
	"path/filepath"
)

// AppName names the per-user config directory.
const AppName = "journal"

// GetConfigHome returns XDG_CONFIG_HOME or fallback to ~/.config
func GetConfigHome() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	home := os.Getenv("HOME")
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the user config file location.
func DefaultConfigPath() string {
	return filepath.Join(GetConfigHome(), AppName, "config.toml")
}
