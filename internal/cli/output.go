package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pdrpinto/scalarstar"
)

// Exit codes for CLI commands.
const (
	ExitSuccess = 0 // A path was found
	ExitFailure = 1 // No path: frontier exhausted, budget used up, or timed out
	ExitUsage   = 2 // Malformed flags, arguments, or configuration
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitUsage)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Report is the outcome of one search run as shown to the user.
type Report struct {
	RunID          string    `json:"run_id"`
	Start          float64   `json:"start"`
	Target         float64   `json:"target"`
	Precision      float64   `json:"precision"`
	Constant       float64   `json:"constant"`
	Found          bool      `json:"found"`
	Path           []float64 `json:"path,omitempty"`
	Actions        []string  `json:"actions,omitempty"`
	TerminalAction string    `json:"terminal_action"`
	ArrivalAction  string    `json:"arrival_action,omitempty"`
	Cost           float64   `json:"cost"`
	Expanded       int       `json:"expanded"`
	BestDistance   float64   `json:"best_distance"`
	Elapsed        string    `json:"elapsed"`

	path    []scalarstar.Point
	actions []scalarstar.Action
	elapsed time.Duration
}

func newReport(runID string, start, target, precision, constant float64, result scalarstar.Result, elapsed time.Duration) Report {
	report := Report{
		RunID:          runID,
		Start:          start,
		Target:         target,
		Precision:      precision,
		Constant:       constant,
		Found:          result.Found,
		TerminalAction: result.TerminalAction.String(),
		ArrivalAction:  result.ArrivalAction.String(),
		Cost:           result.TotalCost,
		Expanded:       result.ExpandedNodes,
		BestDistance:   finiteOrZero(result.BestDistance),
		Elapsed:        elapsed.String(),
		path:           result.Path,
		actions:        result.Actions,
		elapsed:        elapsed,
	}
	for _, point := range result.Path {
		report.Path = append(report.Path, point.X)
	}
	for _, action := range result.Actions {
		report.Actions = append(report.Actions, action.String())
	}
	return report
}

// finiteOrZero keeps non-finite values out of JSON output.
func finiteOrZero(value float64) float64 {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0
	}
	return value
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`              // "E_NO_PATH", "E_BUDGET", ...
	Message string      `json:"message"`           // human-readable message
	Details interface{} `json:"details,omitempty"` // additional context
}

// Header prints the run parameters. JSON output has no header.
func (f *OutputFormatter) Header(start, target scalarstar.Point, precision, constant float64) {
	if f.Format == "json" {
		return
	}
	fmt.Fprintf(f.Writer, "Using start = %s, target = %s\n", start, target)
	fmt.Fprintf(f.Writer, "Precision = %s, Constant movement = %s\n",
		scalarstar.FormatCoordinate(precision), scalarstar.FormatCoordinate(constant))
}

// Success outputs a found path in the configured format.
func (f *OutputFormatter) Success(report Report) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   report,
		})
	}

	fmt.Fprintf(f.Writer, "actions=%v\n", report.actions)
	for _, point := range report.path {
		fmt.Fprintln(f.Writer, point)
	}
	f.footer(report)
	return nil
}

// Failure outputs a search that ended without a path.
func (f *OutputFormatter) Failure(code string, err error, report Report) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: err.Error(),
				Details: report,
			},
		})
	}

	fmt.Fprintln(f.Writer, "No path found")
	f.footer(report)
	return nil
}

func (f *OutputFormatter) footer(report Report) {
	printer := message.NewPrinter(language.English)
	printer.Fprintf(f.Writer, "Expanded nodes = %d\n", report.Expanded)
	fmt.Fprintf(f.Writer, "Execution time: %s\n", report.elapsed)
}
