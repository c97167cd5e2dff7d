package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/scalarstar"
	"github.com/pdrpinto/scalarstar/internal/config"
)

// SearchOptions holds the flags shared by the search and trace commands.
type SearchOptions struct {
	*RootOptions
	ConfigPath       string
	Start            float64
	Precision        float64
	Constant         float64
	MaxExpansions    int
	Timeout          time.Duration
	ProgressInterval time.Duration
}

func addSearchFlags(cmd *cobra.Command, opts *SearchOptions) {
	defaults := config.Default()
	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "YAML file with run parameters; flags override it")
	flags.Float64Var(&opts.Start, "start", defaults.Start, "start point")
	flags.Float64Var(&opts.Precision, "precision", defaults.Precision, "stop once a state is closer than this to the target")
	flags.Float64Var(&opts.Constant, "constant", defaults.Constant, "constant movement of the step moves")
	flags.IntVar(&opts.MaxExpansions, "max-expansions", defaults.MaxExpansions, "give up after this many expansions (0 = unlimited)")
	flags.DurationVar(&opts.Timeout, "timeout", defaults.Timeout, "give up after this long (0 = no limit)")
	flags.DurationVar(&opts.ProgressInterval, "progress-interval", defaults.ProgressInterval, "minimum time between progress log records")
}

// resolveConfig layers defaults, the optional config file, explicitly set
// flags, and the positional target, then validates the result.
func resolveConfig(cmd *cobra.Command, opts *SearchOptions, args []string) (config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath, cfg)
		if err != nil {
			return cfg, usageError(cmd, err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("start") {
		cfg.Start = opts.Start
	}
	if flags.Changed("precision") {
		cfg.Precision = opts.Precision
	}
	if flags.Changed("constant") {
		cfg.Constant = opts.Constant
	}
	if flags.Changed("max-expansions") {
		cfg.MaxExpansions = opts.MaxExpansions
	}
	if flags.Changed("timeout") {
		cfg.Timeout = opts.Timeout
	}
	if flags.Changed("progress-interval") {
		cfg.ProgressInterval = opts.ProgressInterval
	}

	if len(args) == 1 {
		target, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return cfg, usageError(cmd, fmt.Errorf("invalid target value %q", args[0]))
		}
		cfg.Target = &target
	}

	if err := cfg.Validate(); err != nil {
		return cfg, usageError(cmd, err)
	}
	return cfg, nil
}

// searchContext derives the run context: cancelled on SIGINT/SIGTERM and
// bounded by timeout when it is positive.
func searchContext(cmd *cobra.Command, timeout time.Duration) (context.Context, context.CancelFunc) {
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	if timeout <= 0 {
		return ctx, stop
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	return timeoutCtx, func() {
		cancel()
		stop()
	}
}

func progressLogger(logger *slog.Logger) scalarstar.Observer {
	return func(progress scalarstar.Progress) {
		logger.Info("searching...",
			"distance_to_goal", fmt.Sprintf("%.9f", progress.BestDistance),
			"open_set", progress.OpenSetSize,
			"expanded", progress.Expanded)
	}
}

func runSearch(cmd *cobra.Command, opts *SearchOptions, args []string) error {
	cfg, err := resolveConfig(cmd, opts, args)
	if err != nil {
		return err
	}

	runID := opts.NewRunID()
	logger := newLogger(cmd, opts.RootOptions, runID)
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	start := scalarstar.NewPoint(cfg.Start)
	target := scalarstar.NewPoint(*cfg.Target)
	formatter.Header(start, target, cfg.Precision, cfg.Constant)

	ctx, cancel := searchContext(cmd, cfg.Timeout)
	defer cancel()

	searchOptions := append(cfg.SearchOptions(),
		scalarstar.WithLogger(logger),
		scalarstar.WithObserver(progressLogger(logger)),
	)

	began := opts.Now()
	result, searchErr := scalarstar.Search(ctx, start, target, searchOptions...)
	elapsed := opts.Now().Sub(began)
	report := newReport(runID, cfg.Start, *cfg.Target, cfg.Precision, cfg.Constant, result, elapsed)

	if searchErr != nil {
		logger.Info("search ended without a path",
			"expanded", result.ExpandedNodes,
			"best_distance", report.BestDistance,
			"error", searchErr)
		if err := formatter.Failure(failureCode(searchErr), searchErr, report); err != nil {
			return err
		}
		return WrapExitError(ExitFailure, "no path found", searchErr)
	}

	logger.Info("found a path",
		"distance", result.BestDistance,
		"length", len(result.Path),
		"expanded", result.ExpandedNodes)
	return formatter.Success(report)
}

func failureCode(err error) string {
	switch {
	case scalarstar.IsBudgetExceeded(err):
		return "E_BUDGET"
	case errors.Is(err, context.DeadlineExceeded):
		return "E_TIMEOUT"
	case errors.Is(err, context.Canceled):
		return "E_CANCELLED"
	default:
		return "E_NO_PATH"
	}
}
