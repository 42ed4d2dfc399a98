// ABOUTME: Tests for forward scans: Each, Search and Verify
// ABOUTME: Validates filtering, limits, and problem reporting
package journal

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterMatches(t *testing.T) {
	since := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)
	entry := Entry{Timestamp: since.Add(time.Hour), Entry: "Deployed the Widget service"}

	tests := []struct {
		name   string
		filter *Filter
		want   bool
	}{
		{"nil filter", nil, true},
		{"empty filter", &Filter{}, true},
		{"case insensitive text", &Filter{Text: "widget"}, true},
		{"text miss", &Filter{Text: "gadget"}, false},
		{"inside range", &Filter{Since: &since, Until: &until}, true},
		{"before since", &Filter{Since: &until}, false},
		{"after until", &Filter{Until: &since}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(entry))
		})
	}
}

func TestSearch(t *testing.T) {
	j := newTestJournal(t)
	appendAll(t, j, "coffee", "tea", "more coffee", "water", "last coffee")

	t.Run("text", func(t *testing.T) {
		got, err := j.Search(context.Background(), &Filter{Text: "COFFEE"}, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"coffee", "more coffee", "last coffee"}, entryTexts(got))
	})

	t.Run("limit keeps the most recent matches", func(t *testing.T) {
		got, err := j.Search(context.Background(), &Filter{Text: "coffee"}, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"more coffee", "last coffee"}, entryTexts(got))
	})

	t.Run("date range", func(t *testing.T) {
		// stepClock stamps entries at 09:00, 09:01, ...
		since := time.Date(2025, 11, 29, 9, 1, 0, 0, time.UTC)
		until := time.Date(2025, 11, 29, 9, 3, 0, 0, time.UTC)
		got, err := j.Search(context.Background(), &Filter{Since: &since, Until: &until}, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"tea", "more coffee", "water"}, entryTexts(got))
	})

	t.Run("no matches", func(t *testing.T) {
		got, err := j.Search(context.Background(), &Filter{Text: "juice"}, 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSearchMissingFile(t *testing.T) {
	j := newTestJournal(t)
	_, err := j.Search(context.Background(), nil, 0)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestEachReportsLineNumbers(t *testing.T) {
	j := newTestJournal(t)
	appendAll(t, j, "one")
	f, err := os.OpenFile(j.Path(), os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString("oops\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	err = j.Each(context.Background(), func(Entry) error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeserialization)
	assert.Contains(t, err.Error(), "line 2")

	skipping := New(j.Path(), WithSkipCorrupt(true))
	var seen []string
	err = skipping.Each(context.Background(), func(e Entry) error {
		seen = append(seen, e.Entry)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"one"}, seen)
}

func TestVerify(t *testing.T) {
	j := newTestJournal(t)
	appendAll(t, j, "one", "two")

	report, err := j.Verify(context.Background())
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, 2, report.Lines)
	assert.Equal(t, 2, report.Entries)
	assert.Equal(t, time.Date(2025, 11, 29, 9, 0, 0, 0, time.UTC), report.First)
	assert.Equal(t, time.Date(2025, 11, 29, 9, 1, 0, 0, time.UTC), report.Last)

	f, err := os.OpenFile(j.Path(), os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString("bad\n" + `{"timestamp":"2020-01-01T00:00:00Z","entry":"old"}` + "\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	report, err = j.Verify(context.Background())
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.Equal(t, 4, report.Lines)
	assert.Equal(t, 3, report.Entries)
	assert.Equal(t, 1, report.OutOfOrder)
	require.Len(t, report.Problems, 1)
	assert.Equal(t, 3, report.Problems[0].Line)
	assert.ErrorIs(t, &report.Problems[0], ErrDeserialization)
}

func TestVerifyMissingFile(t *testing.T) {
	j := newTestJournal(t)
	_, err := j.Verify(context.Background())
	assert.ErrorIs(t, err, ErrFileNotFound)
}
