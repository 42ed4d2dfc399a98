// ABOUTME: User configuration loaded from config.toml under the XDG config home
// ABOUTME: A missing default file means defaults; a malformed or missing explicit file is an error
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// Config is the per-user configuration.
type Config struct {
	// Path overrides the journal file location. "~/" is expanded.
	Path string `toml:"path"`
	// SkipCorrupt makes reads skip malformed lines instead of failing.
	SkipCorrupt bool `toml:"skip_corrupt"`
	// Color toggles terminal colors. Unset means on when stdout is a TTY.
	Color *bool `toml:"color"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// Format is the default output format for reads.
	Format string `toml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Format:   "plain",
	}
}

// Load reads the config file at path on top of the defaults. The file must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("failed to load config %s: unknown key %q", path, undecoded[0].String())
	}

	return cfg, nil
}

// LoadDefault reads the user config from its XDG location. A missing file
// means defaults.
func LoadDefault() (*Config, string, error) {
	path := DefaultConfigPath()

	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), path, nil
	}
	return cfg, path, err
}

// ColorEnabled is false only when the config turns colors off.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}
