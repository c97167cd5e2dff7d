package scalarstar

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	DefaultStart            = 0.5
	DefaultPrecision        = 1e-6
	DefaultStep             = 0.00589375
	DefaultAnchorLow        = 0.0
	DefaultAnchorHigh       = 1.0
	DefaultProgressInterval = 50 * time.Millisecond
)

// Result contains the outcome of a search.
//
// Path runs from the start to the terminal state. Actions has one entry per
// Path element: Actions[i] is the move from Path[i] to Path[i+1], and the
// final entry is TerminalAction. TerminalAction is the last move the search
// examined before stopping, which need not be the move that reached the
// terminal state; use ArrivalAction or EdgeActions for edge-accurate labels.
type Result struct {
	Path           []Point
	Actions        []Action
	TerminalAction Action
	ArrivalAction  Action
	TotalCost      float64
	ExpandedNodes  int
	BestDistance   float64
	Found          bool
}

// EdgeActions returns the per-edge actions read from the back-pointers,
// one fewer than the number of states in Path.
func (result Result) EdgeActions() []Action {
	if len(result.Actions) == 0 {
		return nil
	}
	return result.Actions[:len(result.Actions)-1]
}

// Terminal returns the last state of the path.
func (result Result) Terminal() (Point, bool) {
	if len(result.Path) == 0 {
		return Point{}, false
	}
	return result.Path[len(result.Path)-1], true
}

// Options defines parameters for the search.
type Options struct {
	Precision        float64
	Step             float64
	AnchorLow        float64
	AnchorHigh       float64
	MaxExpansions    int
	Observer         Observer
	ProgressInterval time.Duration
	Clock            func() time.Time
	Logger           *slog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithPrecision sets the goal tolerance: the search stops on a state strictly closer than precision.
func WithPrecision(precision float64) Option {
	return func(options *Options) { options.Precision = precision }
}

// WithStep sets the constant used by the step moves.
func WithStep(step float64) Option {
	return func(options *Options) { options.Step = step }
}

// WithAnchors sets the two values the half moves interpolate toward.
func WithAnchors(low float64, high float64) Option {
	return func(options *Options) {
		options.AnchorLow = low
		options.AnchorHigh = high
	}
}

// WithMaxExpansions caps the number of expanded states. Zero or less means no cap.
func WithMaxExpansions(maxExpansions int) Option {
	return func(options *Options) { options.MaxExpansions = maxExpansions }
}

// WithObserver registers a progress observer.
func WithObserver(observer Observer) Option {
	return func(options *Options) { options.Observer = observer }
}

// WithProgressInterval sets the minimum time between two observations.
func WithProgressInterval(interval time.Duration) Option {
	return func(options *Options) { options.ProgressInterval = interval }
}

// WithClock replaces time.Now for progress throttling.
func WithClock(clock func() time.Time) Option {
	return func(options *Options) { options.Clock = clock }
}

// WithLogger sets the logger used for debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func buildOptions(options []Option) Options {
	searchOptions := Options{
		Precision:        DefaultPrecision,
		Step:             DefaultStep,
		AnchorLow:        DefaultAnchorLow,
		AnchorHigh:       DefaultAnchorHigh,
		ProgressInterval: DefaultProgressInterval,
		Clock:            time.Now,
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = slog.New(slog.DiscardHandler)
	}
	return searchOptions
}

// Search runs A* from startPoint until a state closer than the precision to
// goalPoint is expanded.
//
// The returned error is nil exactly when Result.Found is true. Otherwise it
// is ErrNoPath, a *BudgetExceededError, or the context error.
func Search(
	contextObject context.Context,
	startPoint Point,
	goalPoint Point,
	options ...Option,
) (Result, error) {
	searchOptions := buildOptions(options)
	logger := searchOptions.Logger

	logger.Debug("search starting",
		"start", startPoint.X,
		"goal", goalPoint.X,
		"precision", searchOptions.Precision,
		"step", searchOptions.Step,
		"max_expansions", searchOptions.MaxExpansions)

	run := newSearch(startPoint, goalPoint, searchOptions)
	for {
		if err := contextObject.Err(); err != nil {
			logger.Debug("search cancelled", "expanded", run.expanded, "error", err)
			return run.result(), fmt.Errorf("search cancelled after %d expansions: %w", run.expanded, err)
		}

		done, err := run.expand()
		if !done {
			continue
		}
		result := run.result()
		if err != nil {
			logger.Debug("search stopped",
				"expanded", result.ExpandedNodes,
				"best_distance", result.BestDistance,
				"error", err)
			return result, err
		}
		logger.Debug("path found",
			"distance", result.BestDistance,
			"length", len(result.Path),
			"expanded", result.ExpandedNodes)
		return result, nil
	}
}
