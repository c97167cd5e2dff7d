package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"positive target", []string{"0.75"}, []string{"0.75"}},
		{"negative target", []string{"-0.25"}, []string{"--", "-0.25"}},
		{"negative target after flag value", []string{"--precision", "0.01", "-0.25"}, []string{"--precision", "0.01", "--", "-0.25"}},
		{"negative flag value", []string{"--start", "-0.5", "0.75"}, []string{"--start", "-0.5", "0.75"}},
		{"negative inline flag value", []string{"--start=-0.5", "-0.25"}, []string{"--start=-0.5", "--", "-0.25"}},
		{"after bool shorthand", []string{"-v", "-0.25"}, []string{"-v", "--", "-0.25"}},
		{"trace subcommand", []string{"trace", "--start", "-0.5", "-0.25"}, []string{"trace", "--start", "-0.5", "--", "-0.25"}},
		{"already terminated", []string{"--", "-0.25"}, []string{"--", "-0.25"}},
		{"unknown shorthand untouched", []string{"-x", "0.75"}, []string{"-x", "0.75"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeArgs(NewRootCommand(), tt.args))
		})
	}
}

func TestSearch_NegativeTarget(t *testing.T) {
	stdout, _, err := execute(t, "--start", "0", "--constant", "0.25", "-0.25")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Using start = P(0), target = P(-0.25)")
	assert.Contains(t, stdout, "actions=[constant_left constant_right]")
	assert.Contains(t, stdout, "P(-0.25)\n")
}

func TestSearch_NegativeStartAndTarget(t *testing.T) {
	stdout, _, err := execute(t, "--start", "-0.5", "--constant", "0.25", "-0.25")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Using start = P(-0.5), target = P(-0.25)")
	assert.Contains(t, stdout, "actions=[half_left")
}

func TestTrace_NegativeTarget(t *testing.T) {
	stdout, _, err := execute(t, "trace", "--start", "0", "--constant", "0.25", "-0.25")
	require.NoError(t, err)

	snapshots := decodeTrace(t, stdout)
	require.Len(t, snapshots, 2)
	assert.True(t, snapshots[1].Found)
	assert.Equal(t, []float64{0, -0.25}, snapshots[1].Path)
}
