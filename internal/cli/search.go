// ABOUTME: Search command for querying entries
// ABOUTME: Supports text search and date ranges over a full scan
package cli

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"github.com/harper/journal/internal/journal"
)

var (
	searchSince string
	searchUntil string
	searchLimit int
)

var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search entries",
	Long: `Search entries by text and date range. Text matching is case-insensitive.
Dates accept most common formats ("2025-11-29", "Nov 29, 2025", RFC 3339)
and are read as UTC unless they carry a zone.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Build search filter
		filter := &journal.Filter{}
		if len(args) > 0 {
			filter.Text = args[0]
		}

		// Parse dates
		if searchSince != "" {
			since, err := parseDate(searchSince)
			if err != nil {
				return fmt.Errorf("%w: invalid --since date: %w", journal.ErrInvalidArguments, err)
			}
			filter.Since = &since
		}

		if searchUntil != "" {
			until, err := parseDate(searchUntil)
			if err != nil {
				return fmt.Errorf("%w: invalid --until date: %w", journal.ErrInvalidArguments, err)
			}
			filter.Until = &until
		}

		if searchLimit < 0 {
			return fmt.Errorf("%w: --limit must not be negative", journal.ErrInvalidArguments)
		}

		e, err := setup(cmd)
		if err != nil {
			return err
		}

		// Search
		entries, err := e.journal.Search(cmd.Context(), filter, searchLimit)
		if err != nil {
			return fmt.Errorf("failed to search entries: %w", err)
		}

		return journal.WriteEntries(cmd.OutOrStdout(), e.format, entries)
	},
}

// parseDate reads a user supplied date, defaulting to UTC like the stored timestamps.
func parseDate(s string) (time.Time, error) {
	return dateparse.ParseIn(s, time.UTC)
}

func init() {
	searchCmd.Flags().StringVar(&searchSince, "since", "", "Start date (inclusive)")
	searchCmd.Flags().StringVar(&searchUntil, "until", "", "End date (inclusive)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "Keep only the most recent N matches (0 = all)")
	rootCmd.AddCommand(searchCmd)
}
