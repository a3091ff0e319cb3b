package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Execute parses config-file and command-line arguments, runs the
// search, and returns the process exit code.
func Execute() int {
	exitCode := 0
	cmd := NewRootCommand(&exitCode)

	// Defaults from ~/.litgrep come first so the command line wins.
	args := append(LoadConfigArgs(), os.Args[1:]...)
	cmd.SetArgs(FilterUnknownFlags(args, cmd.Flags()))

	if err := cmd.Execute(); err != nil {
		return 1
	}
	return exitCode
}

// NewRootCommand creates the litgrep root command. The search's exit
// code is written through exitCode, since cobra only propagates errors
// and a completed search that found nothing is not an error.
func NewRootCommand(exitCode *int) *cobra.Command {
	var cfg Config
	var recursiveAlt bool

	cmd := &cobra.Command{
		Use:   "litgrep [flags] PATTERN PATH...",
		Short: "Search files for a literal substring",
		Long: `litgrep prints lines that contain a literal substring pattern.

The pattern is plain text, not a regular expression. Paths may be files,
or directories when -r is given; without -r, directories are skipped
silently. Files are always searched in lexicographic path order.`,
		Example: `  litgrep -n error server.log
  litgrep -i -r -f -c "timeout" ./logs`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Missing pattern or missing paths: show usage, not an error.
			if len(args) == 0 {
				return cmd.Help()
			}
			cfg.Pattern = args[0]
			cfg.Paths = args[1:]
			cfg.Recursive = cfg.Recursive || recursiveAlt

			if err := cfg.Validate(); err != nil {
				return cmd.Help()
			}

			*exitCode = Run(cfg)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&cfg.IgnoreCase, "ignore-case", "i", false, "case-insensitive matching")
	flags.BoolVarP(&cfg.LineNumbers, "line-number", "n", false, "prefix each line with its 1-based line number")
	flags.BoolVarP(&cfg.Invert, "invert-match", "v", false, "print lines that do not contain the pattern")
	flags.BoolVarP(&cfg.Recursive, "recursive", "r", false, "descend into directory arguments")
	flags.BoolVarP(&recursiveAlt, "R", "R", false, "same as --recursive")
	flags.BoolVarP(&cfg.FileNames, "with-filename", "f", false, "prefix each line with its file path")
	flags.BoolVarP(&cfg.Color, "color", "c", false, "highlight matched text (degrades to plain when stdout is not a terminal)")
	flags.BoolVar(&cfg.RespectIgnores, "respect-ignores", false, "honor .gitignore files during recursive descent")
	_ = flags.MarkHidden("R")

	return cmd
}

// FilterUnknownFlags drops dash-prefixed tokens the flag set does not
// recognize before parsing. Letting pflag skip unknown flags instead
// would also swallow the following token as the flag's value, so a
// stray flag could eat the pattern; unrecognized flags must be ignored
// in isolation, leaving positionals untouched.
func FilterUnknownFlags(args []string, flags *pflag.FlagSet) []string {
	var kept []string
	for _, arg := range args {
		if isUnknownFlag(arg, flags) {
			continue
		}
		kept = append(kept, arg)
	}
	return kept
}

// isUnknownFlag reports whether arg is a dashed token that no registered
// flag accounts for. The help flag is not registered until Execute, so
// -h/--help are special-cased.
func isUnknownFlag(arg string, flags *pflag.FlagSet) bool {
	if len(arg) == 0 || arg[0] != '-' {
		return false
	}
	if arg == "-" || arg == "--" {
		// Bare dashes carry no flag name; ignored like any other
		// unrecognized dashed token.
		return true
	}

	if strings.HasPrefix(arg, "--") {
		name := arg[2:]
		if i := strings.IndexByte(name, '='); i >= 0 {
			name = name[:i]
		}
		if name == "help" {
			return false
		}
		return flags.Lookup(name) == nil
	}

	// Shorthand cluster like -in: unknown if any letter is unregistered.
	body := arg[1:]
	if i := strings.IndexByte(body, '='); i >= 0 {
		body = body[:i]
	}
	for _, c := range body {
		if c == 'h' {
			continue
		}
		if flags.ShorthandLookup(string(c)) == nil {
			return true
		}
	}
	return false
}
