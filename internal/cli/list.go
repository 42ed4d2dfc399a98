// ABOUTME: List command for displaying the most recent entries
// ABOUTME: Shares the tail reader with the root -n flag
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/journal/internal/journal"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent entries",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listLimit < 0 {
			return fmt.Errorf("%w: --limit must not be negative", journal.ErrInvalidArguments)
		}
		return printLast(cmd, listLimit)
	},
}

// printLast prints the last n entries, oldest first.
func printLast(cmd *cobra.Command, n int) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	entries, err := e.journal.Last(cmd.Context(), n)
	if err != nil {
		return err
	}

	return journal.WriteEntries(cmd.OutOrStdout(), e.format, entries)
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "Number of entries to show")
	rootCmd.AddCommand(listCmd)
}
