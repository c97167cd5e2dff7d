package scalarstar

import (
	"errors"
	"fmt"
)

// ErrNoPath is returned when the frontier empties before any state reaches the goal.
var ErrNoPath = errors.New("no path found")

// ErrBudgetExceeded matches every *BudgetExceededError.
var ErrBudgetExceeded = errors.New("expansion budget exceeded")

// BudgetExceededError is returned when a search uses up its expansion budget
// without reaching the goal.
type BudgetExceededError struct {
	Expanded     int     // Expansions performed
	Limit        int     // Configured budget
	BestDistance float64 // Closest approach to the goal so far
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("expansion budget exceeded: %d expansions reached limit %d (best distance %g)",
		e.Expanded, e.Limit, e.BestDistance)
}

// Is makes errors.Is(err, ErrBudgetExceeded) hold.
func (e *BudgetExceededError) Is(target error) bool {
	return target == ErrBudgetExceeded
}

// IsBudgetExceeded returns true if err is or wraps a *BudgetExceededError.
func IsBudgetExceeded(err error) bool {
	var budgetErr *BudgetExceededError
	return errors.As(err, &budgetErr)
}
