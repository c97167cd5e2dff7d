package scalarstar

// Moves holds the constants the successor rules depend on.
type Moves struct {
	Step float64
	Low  float64
	High float64
}

// Successor is a candidate state together with the move that produced it.
type Successor struct {
	Point  Point
	Action Action
}

// Successors returns the four candidate states of point, in a fixed order.
// Nothing is filtered here; visited and bound checks belong to the driver.
func Successors(point Point, moves Moves) [4]Successor {
	return [4]Successor{
		{Point: Point{X: (point.X + moves.Low) * 0.5}, Action: ActionHalfLeft},
		{Point: Point{X: (point.X + moves.High) * 0.5}, Action: ActionHalfRight},
		{Point: Point{X: point.X - moves.Step}, Action: ActionConstantLeft},
		{Point: Point{X: point.X + moves.Step}, Action: ActionConstantRight},
	}
}
