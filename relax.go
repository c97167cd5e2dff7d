package scalarstar

// RelaxProposal is a candidate improvement for the path to To, produced while
// expanding From.
type RelaxProposal struct {
	From   Point
	To     Point
	Action Action
	GScore float64
	FScore float64
}

// Predecessor is the back-pointer stored for a state: the state it was
// reached from and the move used.
type Predecessor struct {
	Point  Point
	Action Action
}
