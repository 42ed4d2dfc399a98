// ABOUTME: Root command definition and CLI setup
// ABOUTME: Routes bare text to add, -n to the last-N reader, and holds global flags
package cli

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/harper/journal/internal/journal"
)

// Version is the released version of the journal CLI.
const Version = "0.3.0"

// UsageLine is printed on stderr for malformed invocations.
const UsageLine = "Usage: journal <entry> or journal -n <number>"

var (
	journalFile string
	configFile  string
	formatName  string
	skipCorrupt bool
	verbose     bool
	countArg    string
)

var rootCmd = &cobra.Command{
	Use:   "journal",
	Short: "Append-only personal journal",
	Long: `Journal appends timestamped entries to ~/journal.json, one JSON object per line,
and prints the most recent ones.

  journal <entry text...>   append an entry
  journal -n <count>        print the last <count> entries`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("%w: unexpected argument %q", journal.ErrInvalidArguments, args[0])
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if countArg == "" {
			return fmt.Errorf("%w: expected entry text or -n <number>", journal.ErrInvalidArguments)
		}

		n, err := parseCount(countArg)
		if err != nil {
			return err
		}

		return printLast(cmd, n)
	},
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return ExecuteArgs(os.Args[1:])
}

// ExecuteArgs runs the CLI with args, routing bare entry text to add.
func ExecuteArgs(args []string) error {
	rootCmd.SetArgs(routeArgs(args))
	return rootCmd.Execute()
}

// routeArgs injects "add --" in front of the first argument that is neither
// a leading global flag nor the start of a valid command invocation, so entry
// text is never parsed as flags. A command word only counts as a command when
// the arguments after it fit that command; "journal search for keys" and
// "journal help me" are entries.
func routeArgs(args []string) []string {
	i := 0
	for i < len(args) {
		arg := args[i]
		if arg == "-" || arg == "--" || !strings.HasPrefix(arg, "-") {
			break
		}

		span, ok := flagSpan(rootCmd.PersistentFlags(), arg)
		if !ok {
			// -n, --help, --version and unknown flags go to cobra untouched.
			return args
		}
		i += span
	}

	if i >= len(args) || takesOver(args[i:]) {
		return args
	}

	routed := make([]string, 0, len(args)+2)
	routed = append(routed, args[:i]...)
	routed = append(routed, addCmd.Name(), "--")

	if args[i] == "--" {
		i++
	}
	return append(routed, args[i:]...)
}

// completionShells are the subcommands of cobra's completion command.
var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// takesOver reports whether args start a command invocation that cobra
// would accept. Unknown flags after a command word still count, so cobra
// reports them instead of the text being stored.
func takesOver(args []string) bool {
	name, rest := args[0], args[1:]

	switch name {
	case cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	case "help":
		return len(rest) == 0 || (len(rest) == 1 && findCommand(rest[0]) != nil)
	case "completion":
		return len(rest) == 0 || slices.Contains(completionShells, rest[0])
	}

	cmd := findCommand(name)
	if cmd == nil {
		return false
	}

	positional, ok := positionalArgs(cmd, rest)
	if !ok {
		return true
	}
	return cmd.Args == nil || cmd.Args(cmd, positional) == nil
}

// findCommand returns the visible subcommand named or aliased by name.
func findCommand(name string) *cobra.Command {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Hidden {
			continue
		}
		if cmd.Name() == name || cmd.HasAlias(name) {
			return cmd
		}
	}
	return nil
}

// positionalArgs drops cmd's flags (and their values) from args. ok is false
// when args hold a flag cmd does not know.
func positionalArgs(cmd *cobra.Command, args []string) (positional []string, ok bool) {
	flags := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	flags.AddFlagSet(cmd.Flags())
	flags.AddFlagSet(rootCmd.PersistentFlags())

	for k := 0; k < len(args); k++ {
		arg := args[k]
		switch {
		case arg == "--":
			return append(positional, args[k+1:]...), true
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			positional = append(positional, arg)
		default:
			span, known := flagSpan(flags, arg)
			if !known {
				return nil, false
			}
			k += span - 1
		}
	}
	return positional, true
}

// flagSpan reports how many arguments a flag from flags occupies (1 or 2).
// ok is false for anything flags does not define.
func flagSpan(flags *pflag.FlagSet, arg string) (span int, ok bool) {
	if strings.HasPrefix(arg, "--") {
		name, _, inline := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
		flag := flags.Lookup(name)
		if flag == nil {
			return 0, false
		}
		if inline || flag.NoOptDefVal != "" {
			return 1, true
		}
		return 2, true
	}

	// Shorthands may be combined ("-vf path"); the first one that takes a
	// value consumes the rest of the token or the next argument.
	shorts := strings.TrimPrefix(arg, "-")
	for idx := 0; idx < len(shorts); idx++ {
		flag := flags.ShorthandLookup(shorts[idx : idx+1])
		if flag == nil {
			return 0, false
		}
		if flag.NoOptDefVal != "" {
			continue
		}
		if idx == len(shorts)-1 {
			return 2, true
		}
		return 1, true
	}
	return 1, true
}

// parseCount parses a non-negative entry count.
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: expected a non-negative number after -n, got %q", journal.ErrInvalidArguments, s)
	}
	return n, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&journalFile, "file", "f", "", "Journal file (default ~/journal.json)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/journal/config.toml)")
	rootCmd.PersistentFlags().StringVar(&formatName, "format", "", "Output format: plain, markdown or json")
	rootCmd.PersistentFlags().BoolVar(&skipCorrupt, "skip-corrupt", false, "Skip malformed lines instead of failing")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().StringVarP(&countArg, "number", "n", "", "Print the last N entries")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", journal.ErrInvalidArguments, err)
	})
}
