package scalarstar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessors_DefaultMoves(t *testing.T) {
	step := DefaultStep
	moves := Moves{Step: step, Low: 0, High: 1}

	got := Successors(NewPoint(0.5), moves)

	assert.Equal(t, [4]Successor{
		{Point: NewPoint(0.25), Action: ActionHalfLeft},
		{Point: NewPoint(0.75), Action: ActionHalfRight},
		{Point: NewPoint(0.5 - step), Action: ActionConstantLeft},
		{Point: NewPoint(0.5 + step), Action: ActionConstantRight},
	}, got)
}

func TestSuccessors_NoFiltering(t *testing.T) {
	// Successors outside the anchors and duplicates of the input are still returned.
	got := Successors(NewPoint(0), Moves{Step: 2, Low: 0, High: 1})

	assert.Equal(t, NewPoint(0), got[0].Point)
	assert.Equal(t, NewPoint(0.5), got[1].Point)
	assert.Equal(t, NewPoint(-2), got[2].Point)
	assert.Equal(t, NewPoint(2), got[3].Point)
}

func TestSuccessors_CustomAnchors(t *testing.T) {
	got := Successors(NewPoint(4), Moves{Step: 1, Low: -4, High: 8})

	assert.Equal(t, NewPoint(0), got[0].Point)
	assert.Equal(t, NewPoint(6), got[1].Point)
}
