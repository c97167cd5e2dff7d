package scalarstar

// Action labels the move that produced a successor from its predecessor.
type Action string

const (
	// ActionNone is reported when no successor has been examined yet.
	ActionNone          Action = "none"
	ActionHalfLeft      Action = "half_left"
	ActionHalfRight     Action = "half_right"
	ActionConstantLeft  Action = "constant_left"
	ActionConstantRight Action = "constant_right"
)

func (action Action) String() string { return string(action) }
