package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
)

func testRootOptions() *RootOptions {
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &RootOptions{
		Now:      func() time.Time { return fixed },
		NewRunID: func() string { return "run-0001" },
	}
}

// execute runs the CLI with a frozen clock and a fixed run ID.
func execute(t *testing.T, args ...string) (stdout string, stderr string, err error) {
	t.Helper()
	cmd := newRootCommand(testRootOptions())
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(NormalizeArgs(cmd, args))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func assertGolden(t *testing.T, name string, actual string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(actual))
}
