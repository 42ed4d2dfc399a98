// ABOUTME: Shared helpers for CLI tests
// ABOUTME: Runs the command tree in-process against a temporary journal
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and XDG_CONFIG_HOME at empty temp dirs and returns the
// HOME dir.
func isolate(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	color.NoColor = true
	return home
}

// resetFlags restores every flag to its default. Cobra keeps parsed values
// on the package-level command tree between executions.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}

	rootCmd.PersistentFlags().VisitAll(reset)
	rootCmd.Flags().VisitAll(reset)
	for _, cmd := range rootCmd.Commands() {
		cmd.Flags().VisitAll(reset)
	}
}

// run executes the CLI with args and returns captured stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetFlags()
	t.Cleanup(resetFlags)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := ExecuteArgs(args)
	return stdout.String(), stderr.String(), err
}

// runWithFile runs the CLI against the journal at path.
func runWithFile(t *testing.T, path string, args ...string) (string, string, error) {
	t.Helper()
	return run(t, append([]string{"--file", path}, args...)...)
}

func tempJournal(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "journal.json")
}

func writeJournal(t *testing.T, path string, lines ...string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
}

// outputLines splits command output, dropping the trailing newline.
func outputLines(out string) []string {
	out = strings.TrimSuffix(out, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// entryText strips the "timestamp - " prefix from a plain output line.
func entryText(line string) string {
	_, text, _ := strings.Cut(line, " - ")
	return text
}

func hasCommand(name string) bool {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == name {
			return true
		}
	}
	return false
}
