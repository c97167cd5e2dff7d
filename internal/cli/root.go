// Package cli implements the scalarstar command line.
package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Now and NewRunID are overridden by tests.
	Now      func() time.Time
	NewRunID func() string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command. Run without a subcommand it
// searches for a path to the given target.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{
		Now:      time.Now,
		NewRunID: uuid.NewString,
	})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	searchOpts := &SearchOptions{RootOptions: opts}

	cmd := &cobra.Command{
		Use:   "scalarstar [flags] <target>",
		Short: "A* search on the real line",
		Long: `Search for a sequence of moves that takes the start value to within
precision of the target.

Each move either halves the distance to 0 or 1, or adds or subtracts the
constant. Every move costs 1.

Targets that halving cannot reach exactly, such as 0.3, are found quickly
only when precision is 1e-5 or coarser. Finer precisions may run into the
--max-expansions budget.`,
		Example: `  scalarstar 0.75
  scalarstar --start 0.4 0.9
  scalarstar --precision 1e-7 --constant 0.005 0.6
  scalarstar -0.25`,
		Args:          targetArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return usageError(cmd, fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, searchOpts, args)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	addSearchFlags(cmd, searchOpts)

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError(c, err)
	})

	cmd.AddCommand(NewTraceCommand(opts))

	return cmd
}

// targetArgs accepts at most one positional target. Without one the target
// must come from --config.
func targetArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return usageError(cmd, fmt.Errorf("expected one target value, got %d", len(args)))
	}
	return nil
}

// usageError prints the usage text to stderr and tags err with ExitUsage.
func usageError(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
	return WrapExitError(ExitUsage, "invalid arguments", err)
}

// newLogger builds the run logger: text records on stderr, tagged with the run ID.
func newLogger(cmd *cobra.Command, opts *RootOptions, runID string) *slog.Logger {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler).With("run_id", runID)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
