package scalarstar

import "github.com/pdrpinto/scalarstar/internal"

// reconstructPath returns the states from start to terminal and one action
// per state. All but the last action are read from the ledger; the last one
// is terminalAction, whatever the driver had last examined.
func reconstructPath(ledger *Ledger, terminal Point, terminalAction Action) ([]Point, []Action) {
	path, actions := internal.ReconstructPath(terminal, func(point Point) (Point, Action, bool) {
		predecessor, ok := ledger.CameFrom(point)
		return predecessor.Point, predecessor.Action, ok
	})
	return path, append(actions, terminalAction)
}
