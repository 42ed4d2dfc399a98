// ABOUTME: Add command for appending a journal entry
// ABOUTME: Hidden target for routed entry text; joins arguments with single spaces
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harper/journal/internal/journal"
)

var addCmd = &cobra.Command{
	Use:    "add <entry text...>",
	Short:  "Append an entry",
	Hidden: true,
	Long: `Append an entry to the journal. All arguments are joined with single spaces.

Entry text is routed here, so "journal buy milk" stores "buy milk". Text that
starts with a command word is still an entry unless the rest fits that command;
"journal -- list" stores the single word.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("%w: missing entry text", journal.ErrInvalidArguments)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}

		if _, err := e.journal.Append(strings.Join(args, " ")); err != nil {
			return fmt.Errorf("failed to add entry: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
