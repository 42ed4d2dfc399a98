// ABOUTME: Per-invocation setup shared by commands
// ABOUTME: Loads config, builds the logger, and resolves the journal path
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/journal/internal/config"
	"github.com/harper/journal/internal/journal"
	"github.com/harper/journal/internal/logging"
)

// env is everything a command needs once flags are parsed.
type env struct {
	cfg     *config.Config
	logger  *log.Logger
	journal *journal.Journal
	format  journal.Format
}

// setup loads configuration and opens (but does not touch) the journal.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, cfgPath, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, verbose)
	if err != nil {
		return nil, fmt.Errorf("invalid log_level in %s: %w", cfgPath, err)
	}

	if !cfg.ColorEnabled() {
		color.NoColor = true
	}

	sources := config.PathSources{Flag: journalFile, User: cfg}
	if journalFile == "" {
		if err := findProject(&sources, logger); err != nil {
			return nil, err
		}
	}

	path, err := config.ResolveJournalPath(sources)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved journal", "path", path, "config", cfgPath)

	format, err := pickFormat(cfg, sources.Project)
	if err != nil {
		return nil, err
	}

	j := journal.New(path,
		journal.WithSkipCorrupt(skipCorrupt || cfg.SkipCorrupt),
		journal.WithLogger(logger),
	)

	return &env{cfg: cfg, logger: logger, journal: j, format: format}, nil
}

// loadConfig reads --config when given, otherwise the optional XDG config.
func loadConfig() (*config.Config, string, error) {
	if configFile == "" {
		return config.LoadDefault()
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, configFile, err
	}
	return cfg, configFile, nil
}

// findProject fills in the project journal when a .journal file is found
// above the working directory.
func findProject(sources *config.PathSources, logger *log.Logger) error {
	workingDir, err := os.Getwd()
	if err != nil {
		logger.Debug("skipping project lookup", "err", err)
		return nil
	}

	projectRoot, err := config.FindProjectRoot(workingDir)
	if err != nil || projectRoot == "" {
		return nil
	}

	projectCfg, err := config.LoadProjectConfig(filepath.Join(projectRoot, config.ProjectFileName))
	if err != nil {
		return fmt.Errorf("failed to load project config in %s: %w", projectRoot, err)
	}

	logger.Debug("using project journal", "root", projectRoot)
	sources.ProjectRoot = projectRoot
	sources.Project = projectCfg
	return nil
}

// pickFormat applies --format, then the project file, then the user config.
func pickFormat(cfg *config.Config, project *config.ProjectConfig) (journal.Format, error) {
	name := cfg.Format
	if project != nil && project.Format != "" {
		name = project.Format
	}
	if formatName != "" {
		name = formatName
	}
	return journal.ParseFormat(name)
}
