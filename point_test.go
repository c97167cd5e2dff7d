package scalarstar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointKey_ExactBits(t *testing.T) {
	positiveZero := NewPoint(0)
	negativeZero := NewPoint(math.Copysign(0, -1))

	assert.True(t, positiveZero.X == negativeZero.X, "float comparison treats zeros as equal")
	assert.False(t, positiveZero.Same(negativeZero), "state identity must not")

	nan := NewPoint(math.NaN())
	assert.True(t, nan.Same(nan))

	tenth, fifth := 0.1, 0.2
	assert.True(t, NewPoint(tenth+fifth).Same(NewPoint(tenth+fifth)))
	assert.False(t, NewPoint(tenth+fifth).Same(NewPoint(0.3)))
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "P(0.5)", NewPoint(0.5).String())
	assert.Equal(t, "P(0.000001)", NewPoint(1e-6).String())
	assert.Equal(t, "P(0.00001)", NewPoint(1e-5).String())
	assert.Equal(t, "P(1000000000000000000000)", NewPoint(1e21).String())
	assert.Equal(t, "P(-2)", NewPoint(-2).String())
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"same", 0.5, 0.5, 0},
		{"forward", 0.25, 0.75, 0.5},
		{"backward", 0.75, 0.25, 0.5},
		{"negative", -1, 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(NewPoint(tt.a), NewPoint(tt.b)))
			assert.Equal(t, Distance(NewPoint(tt.a), NewPoint(tt.b)), Distance(NewPoint(tt.b), NewPoint(tt.a)))
		})
	}
}
