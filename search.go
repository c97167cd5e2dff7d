package scalarstar

import "math"

// phase is the lifecycle of a single search.
type phase int

const (
	phaseRunning phase = iota
	phaseFound
	phaseExhausted
	phaseBudgetExceeded
)

// search owns every structure of one invocation. Nothing in it is shared.
type search struct {
	start   Point
	goal    Point
	options Options
	moves   Moves

	frontier *Frontier
	ledger   *Ledger
	closed   map[uint64]Point
	throttle *throttle

	// lastAction is overwritten after every successor examined, accepted or not.
	lastAction   Action
	bestDistance float64
	expanded     int
	current      Point
	phase        phase
}

func newSearch(startPoint Point, goalPoint Point, options Options) *search {
	startFScore := Distance(startPoint, goalPoint)
	run := &search{
		start:   startPoint,
		goal:    goalPoint,
		options: options,
		moves: Moves{
			Step: options.Step,
			Low:  options.AnchorLow,
			High: options.AnchorHigh,
		},
		frontier:     NewFrontier(),
		ledger:       NewLedger(startPoint, startFScore),
		closed:       make(map[uint64]Point),
		throttle:     newThrottle(options.ProgressInterval, options.Clock),
		lastAction:   ActionNone,
		bestDistance: math.Inf(1),
		phase:        phaseRunning,
	}
	run.frontier.Open(startPoint, startFScore)
	return run
}

// expand performs one live expansion. It reports done once the search has
// reached a terminal phase; err is nil only for phaseFound.
func (run *search) expand() (done bool, err error) {
	switch run.phase {
	case phaseFound:
		return true, nil
	case phaseExhausted:
		return true, ErrNoPath
	case phaseBudgetExceeded:
		return true, run.budgetError()
	}

	if run.frontier.Len() == 0 {
		run.phase = phaseExhausted
		return true, ErrNoPath
	}
	if run.options.MaxExpansions > 0 && run.expanded >= run.options.MaxExpansions {
		run.phase = phaseBudgetExceeded
		return true, run.budgetError()
	}

	item, _ := run.frontier.Pop()
	currentPoint := item.Point
	run.current = currentPoint
	run.expanded++

	distanceToGoal := Distance(currentPoint, run.goal)
	run.bestDistance = math.Min(run.bestDistance, distanceToGoal)
	run.observe()

	// Goal check
	if distanceToGoal < run.options.Precision {
		run.phase = phaseFound
		return true, nil
	}
	run.closed[currentPoint.Key()] = currentPoint

	// --- Relax successors ---
	currentG := run.ledger.GScore(currentPoint)
	for _, successor := range Successors(currentPoint, run.moves) {
		tentativeG := currentG + 1
		proposal := RelaxProposal{
			From:   currentPoint,
			To:     successor.Point,
			Action: successor.Action,
			GScore: tentativeG,
			FScore: tentativeG + Distance(successor.Point, run.goal),
		}
		if run.ledger.Relax(proposal) && !run.frontier.Contains(successor.Point) {
			delete(run.closed, successor.Point.Key())
			run.frontier.Open(successor.Point, proposal.FScore)
		}
		run.lastAction = successor.Action
	}
	return false, nil
}

func (run *search) observe() {
	if run.options.Observer == nil || !run.throttle.allow() {
		return
	}
	run.options.Observer(Progress{
		BestDistance: run.bestDistance,
		// current is still open until the goal test fails and it is closed.
		OpenSetSize:  run.frontier.Len() + 1,
		Expanded:     run.expanded,
	})
}

func (run *search) budgetError() error {
	return &BudgetExceededError{
		Expanded:     run.expanded,
		Limit:        run.options.MaxExpansions,
		BestDistance: run.bestDistance,
	}
}

func (run *search) result() Result {
	result := Result{
		ExpandedNodes:  run.expanded,
		BestDistance:   run.bestDistance,
		TerminalAction: run.lastAction,
	}
	if run.phase != phaseFound {
		return result
	}
	result.Found = true
	result.Path, result.Actions = reconstructPath(run.ledger, run.current, run.lastAction)
	result.TotalCost = run.ledger.GScore(run.current)
	result.ArrivalAction = ActionNone
	if predecessor, ok := run.ledger.CameFrom(run.current); ok {
		result.ArrivalAction = predecessor.Action
	}
	return result
}
