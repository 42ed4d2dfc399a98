// ABOUTME: Tests for the list, search and verify commands
// ABOUTME: Exercises output formats and date filtering through the command tree
package cli

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/journal/internal/journal"
)

var fixtureLines = []string{
	`{"timestamp":"2025-11-27T08:00:00Z","entry":"Deploy api"}`,
	`{"timestamp":"2025-11-28T12:30:00Z","entry":"lunch with sam"}`,
	`{"timestamp":"2025-11-29T17:45:00Z","entry":"deploy web"}`,
}

func fixtureJournal(t *testing.T) string {
	t.Helper()
	path := tempJournal(t)
	writeJournal(t, path, fixtureLines...)
	return path
}

func TestListCommand(t *testing.T) {
	isolate(t)
	path := fixtureJournal(t)

	t.Run("default limit shows everything", func(t *testing.T) {
		stdout, _, err := runWithFile(t, path, "list")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"2025-11-27 08:00:00 - Deploy api",
			"2025-11-28 12:30:00 - lunch with sam",
			"2025-11-29 17:45:00 - deploy web",
		}, outputLines(stdout))
	})

	t.Run("limit", func(t *testing.T) {
		stdout, _, err := runWithFile(t, path, "ls", "-n", "1")
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-11-29 17:45:00 - deploy web"}, outputLines(stdout))
	})

	t.Run("json format", func(t *testing.T) {
		stdout, _, err := runWithFile(t, path, "--format", "json", "list", "-n", "2")
		require.NoError(t, err)
		assert.Equal(t, fixtureLines[1:], outputLines(stdout))
	})

	t.Run("markdown format", func(t *testing.T) {
		stdout, _, err := runWithFile(t, path, "--format=markdown", "list", "-n", "1")
		require.NoError(t, err)
		assert.Equal(t, "## 2025-11-29 17:45:00\n\ndeploy web\n\n", stdout)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, _, err := runWithFile(t, path, "--format", "xml", "list")
		require.ErrorIs(t, err, journal.ErrInvalidArguments)
	})

	t.Run("negative limit", func(t *testing.T) {
		_, _, err := runWithFile(t, path, "list", "--limit=-1")
		require.ErrorIs(t, err, journal.ErrInvalidArguments)
	})
}

func TestFormatFromConfig(t *testing.T) {
	home := isolate(t)
	path := fixtureJournal(t)

	configDir := filepath.Join(home, ".config", "journal")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("format = \"json\"\n"), 0o644))

	stdout, _, err := runWithFile(t, path, "-n", "1")
	require.NoError(t, err)
	assert.Equal(t, fixtureLines[2:], outputLines(stdout))
}

func TestExplicitConfigFile(t *testing.T) {
	home := isolate(t)
	path := fixtureJournal(t)

	t.Run("missing file is an error", func(t *testing.T) {
		_, _, err := runWithFile(t, path, "--config", filepath.Join(home, "typo.toml"), "-n", "1")
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("existing file is used", func(t *testing.T) {
		cfgPath := filepath.Join(home, "other.toml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("format = \"json\"\n"), 0o644))

		stdout, _, err := runWithFile(t, path, "--config", cfgPath, "-n", "1")
		require.NoError(t, err)
		assert.Equal(t, fixtureLines[2:], outputLines(stdout))
	})
}

func TestReadLastRejectsEarlierCorruption(t *testing.T) {
	isolate(t)
	path := tempJournal(t)
	writeJournal(t, path, "not json", fixtureLines[0])

	for _, count := range []string{"1", "0"} {
		_, _, err := runWithFile(t, path, "-n", count)
		require.ErrorIs(t, err, journal.ErrDeserialization, "n=%s", count)
	}

	stdout, _, err := runWithFile(t, path, "--skip-corrupt", "-n", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-11-27 08:00:00 - Deploy api"}, outputLines(stdout))
}

func TestSearchCommand(t *testing.T) {
	isolate(t)
	path := fixtureJournal(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"text is case-insensitive", []string{"search", "DEPLOY"}, []string{"Deploy api", "deploy web"}},
		{"since", []string{"search", "--since", "2025-11-28"}, []string{"lunch with sam", "deploy web"}},
		{"until", []string{"search", "--until", "2025-11-28 12:30:00"}, []string{"Deploy api", "lunch with sam"}},
		{"text and range", []string{"search", "deploy", "--since", "2025/11/28"}, []string{"deploy web"}},
		{"limit keeps latest", []string{"search", "-n", "1"}, []string{"deploy web"}},
		{"no matches", []string{"search", "dentist"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runWithFile(t, path, tt.args...)
			require.NoError(t, err)

			var got []string
			for _, line := range outputLines(stdout) {
				got = append(got, entryText(line))
			}
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid date", func(t *testing.T) {
		_, _, err := runWithFile(t, path, "search", "--since", "someday maybe")
		require.ErrorIs(t, err, journal.ErrInvalidArguments)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := runWithFile(t, tempJournal(t), "search", "x")
		require.ErrorIs(t, err, journal.ErrFileNotFound)
	})
}

func TestVerifyCommand(t *testing.T) {
	isolate(t)

	t.Run("clean journal", func(t *testing.T) {
		stdout, _, err := runWithFile(t, fixtureJournal(t), "verify")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Entries:   3")
		assert.Contains(t, stdout, "All lines are valid")
	})

	t.Run("corrupt lines", func(t *testing.T) {
		path := tempJournal(t)
		writeJournal(t, path, fixtureLines[0], `{"entry":"no timestamp"}`, fixtureLines[1], `garbage`)

		stdout, _, err := runWithFile(t, path, "verify")
		require.ErrorIs(t, err, journal.ErrDeserialization)
		assert.Contains(t, stdout, "Lines:     4")
		assert.Contains(t, stdout, "Entries:   2")
		assert.Contains(t, stdout, "line 2:")
		assert.Contains(t, stdout, "line 4:")
	})

	t.Run("out of order", func(t *testing.T) {
		path := tempJournal(t)
		writeJournal(t, path, fixtureLines[1], fixtureLines[0])

		stdout, _, err := runWithFile(t, path, "verify")
		require.NoError(t, err)
		assert.Contains(t, stdout, "1 entries are older")
	})
}
