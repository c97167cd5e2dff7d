package scalarstar

import (
	"cmp"
	"context"
	"errors"
	"slices"
)

// StepSnapshot exposes the per-iteration state of the search.
type StepSnapshot struct {
	Current      Point
	Open         []Point
	Closed       []Point
	BestDistance float64
	Expanded     int
	Done         bool
	Found        bool
	Path         []Point
	Actions      []Action
	StepIndex    int
}

// Stepper drives the same search as Search, one expansion per Step call.
type Stepper struct {
	ctx       context.Context
	run       *search
	stepCount int
}

// NewStepper creates a stepper positioned before the first expansion.
func NewStepper(
	parent context.Context,
	startPoint Point,
	goalPoint Point,
	options ...Option,
) *Stepper {
	return &Stepper{
		ctx: parent,
		run: newSearch(startPoint, goalPoint, buildOptions(options)),
	}
}

// Step advances the search by one node expansion and returns a snapshot.
//
// An exhausted frontier yields a Done snapshot with Found unset and a nil
// error. Budget exhaustion and context cancellation are returned as errors.
// Calling Step after Done keeps returning the final snapshot.
func (s *Stepper) Step() (StepSnapshot, error) {
	if s.run.phase == phaseRunning {
		if err := s.ctx.Err(); err != nil {
			return s.snapshot(true), err
		}
		s.stepCount++
	}

	done, err := s.run.expand()
	snapshot := s.snapshot(done)
	if errors.Is(err, ErrNoPath) {
		return snapshot, nil
	}
	return snapshot, err
}

// Result returns the outcome so far. It is only meaningful once a snapshot
// reported Done.
func (s *Stepper) Result() Result { return s.run.result() }

func (s *Stepper) snapshot(done bool) StepSnapshot {
	snapshot := StepSnapshot{
		Current:      s.run.current,
		Open:         sortedPoints(s.run.frontier.Members()),
		Closed:       sortedPoints(mapValues(s.run.closed)),
		BestDistance: s.run.bestDistance,
		Expanded:     s.run.expanded,
		Done:         done,
		StepIndex:    s.stepCount,
	}
	if s.run.phase == phaseFound {
		result := s.run.result()
		snapshot.Found = true
		snapshot.Path = result.Path
		snapshot.Actions = result.Actions
	}
	return snapshot
}

func mapValues(points map[uint64]Point) []Point {
	values := make([]Point, 0, len(points))
	for _, point := range points {
		values = append(values, point)
	}
	return values
}

func sortedPoints(points []Point) []Point {
	slices.SortFunc(points, func(a, b Point) int { return cmp.Compare(a.X, b.X) })
	return points
}
