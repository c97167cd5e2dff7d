package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/scalarstar"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	SearchOptions
	Full bool
}

// traceSnapshot is one line of trace output.
type traceSnapshot struct {
	Step         int       `json:"step"`
	Current      float64   `json:"current"`
	Expanded     int       `json:"expanded"`
	OpenSize     int       `json:"open_size"`
	ClosedSize   int       `json:"closed_size"`
	Open         []float64 `json:"open,omitempty"`
	Closed       []float64 `json:"closed,omitempty"`
	BestDistance float64   `json:"best_distance"`
	Done         bool      `json:"done"`
	Found        bool      `json:"found"`
	Path         []float64 `json:"path,omitempty"`
	Actions      []string  `json:"actions,omitempty"`
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{SearchOptions: SearchOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "trace [flags] <target>",
		Short: "Stream one JSON snapshot per expansion",
		Long: `Run the same search as the root command one expansion at a time and
write a JSON object per expansion to stdout.

Example:
  scalarstar trace 0.75
  scalarstar trace --full --max-expansions 100 0.3`,
		Args:          targetArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(cmd, opts, args)
		},
	}

	addSearchFlags(cmd, &opts.SearchOptions)
	cmd.Flags().BoolVar(&opts.Full, "full", false, "include the open and closed states in every snapshot")

	return cmd
}

func runTrace(cmd *cobra.Command, opts *TraceOptions, args []string) error {
	cfg, err := resolveConfig(cmd, &opts.SearchOptions, args)
	if err != nil {
		return err
	}

	logger := newLogger(cmd, opts.RootOptions, opts.NewRunID())
	ctx, cancel := searchContext(cmd, cfg.Timeout)
	defer cancel()

	stepper := scalarstar.NewStepper(ctx,
		scalarstar.NewPoint(cfg.Start),
		scalarstar.NewPoint(*cfg.Target),
		append(cfg.SearchOptions(), scalarstar.WithLogger(logger))...,
	)
	encoder := json.NewEncoder(cmd.OutOrStdout())

	for {
		snapshot, stepErr := stepper.Step()
		if err := encoder.Encode(convertSnapshot(snapshot, opts.Full)); err != nil {
			return err
		}
		if stepErr != nil {
			logger.Info("trace stopped", "expanded", snapshot.Expanded, "error", stepErr)
			return WrapExitError(ExitFailure, "no path found", stepErr)
		}
		if snapshot.Done {
			if !snapshot.Found {
				return WrapExitError(ExitFailure, "no path found", scalarstar.ErrNoPath)
			}
			return nil
		}
	}
}

func convertSnapshot(st scalarstar.StepSnapshot, full bool) traceSnapshot {
	s := traceSnapshot{
		Step:         st.StepIndex,
		Current:      st.Current.X,
		Expanded:     st.Expanded,
		OpenSize:     len(st.Open),
		ClosedSize:   len(st.Closed),
		BestDistance: finiteOrZero(st.BestDistance),
		Done:         st.Done,
		Found:        st.Found,
	}
	if full {
		s.Open = coordinates(st.Open)
		s.Closed = coordinates(st.Closed)
	}
	if st.Found && len(st.Path) > 0 {
		s.Path = coordinates(st.Path)
		s.Actions = make([]string, 0, len(st.Actions))
		for _, action := range st.Actions {
			s.Actions = append(s.Actions, action.String())
		}
	}
	return s
}

func coordinates(points []scalarstar.Point) []float64 {
	res := make([]float64, 0, len(points))
	for _, p := range points {
		res = append(res, p.X)
	}
	return res
}
