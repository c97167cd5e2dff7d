package scalarstar

import "math"

// Ledger holds the best known costs and back-pointers of a single search.
type Ledger struct {
	gScore   map[uint64]float64
	fScore   map[uint64]float64
	cameFrom map[uint64]Predecessor
}

// NewLedger returns a ledger seeded with the start state at g = 0.
func NewLedger(start Point, startFScore float64) *Ledger {
	return &Ledger{
		gScore:   map[uint64]float64{start.Key(): 0},
		fScore:   map[uint64]float64{start.Key(): startFScore},
		cameFrom: make(map[uint64]Predecessor),
	}
}

// GScore returns the best known cost from the start, +Inf when unknown.
func (ledger *Ledger) GScore(point Point) float64 {
	if g, ok := ledger.gScore[point.Key()]; ok {
		return g
	}
	return math.Inf(1)
}

// FScore returns the best known total estimate, +Inf when unknown.
func (ledger *Ledger) FScore(point Point) float64 {
	if f, ok := ledger.fScore[point.Key()]; ok {
		return f
	}
	return math.Inf(1)
}

// CameFrom returns the back-pointer of point, if it has one. The start state never does.
func (ledger *Ledger) CameFrom(point Point) (Predecessor, bool) {
	predecessor, ok := ledger.cameFrom[point.Key()]
	return predecessor, ok
}

// Relax applies proposal when it strictly improves the cost of its target.
// The back-pointer and both scores are written together.
func (ledger *Ledger) Relax(proposal RelaxProposal) bool {
	if proposal.GScore >= ledger.GScore(proposal.To) {
		return false
	}
	key := proposal.To.Key()
	ledger.cameFrom[key] = Predecessor{Point: proposal.From, Action: proposal.Action}
	ledger.gScore[key] = proposal.GScore
	ledger.fScore[key] = proposal.FScore
	return true
}

// Len is the number of states that have a recorded cost.
func (ledger *Ledger) Len() int { return len(ledger.gScore) }
