// ABOUTME: Verify command for checking every line of the journal
// ABOUTME: Reports malformed lines and exits non-zero when any are found
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/journal/internal/journal"
)

var (
	okColor      = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	problemColor = color.New(color.FgRed)
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the journal file for malformed lines",
	Long: `Decode every line of the journal and report problems.

Reading the last entries only looks at the end of the file; verify scans all of it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}

		report, err := e.journal.Verify(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "File:      %s\n", e.journal.Path())
		fmt.Fprintf(out, "Lines:     %d\n", report.Lines)
		fmt.Fprintf(out, "Entries:   %d\n", report.Entries)
		if report.Entries > 0 {
			fmt.Fprintf(out, "First:     %s\n", report.First.Format(journal.DisplayLayout))
			fmt.Fprintf(out, "Last:      %s\n", report.Last.Format(journal.DisplayLayout))
		}
		if report.OutOfOrder > 0 {
			warnColor.Fprintf(out, "  ! %d entries are older than the entry before them\n", report.OutOfOrder)
		}

		for _, problem := range report.Problems {
			problemColor.Fprintf(out, "  ✗ %v\n", &problem)
		}

		if !report.OK() {
			return fmt.Errorf("%d malformed line(s) in %s: %w", len(report.Problems), e.journal.Path(), report.Problems[0].Err)
		}

		okColor.Fprintln(out, "  ✓ All lines are valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
