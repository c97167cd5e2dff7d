package main

import (
	"fmt"
	"os"

	"github.com/pdrpinto/scalarstar/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	cmd.SetArgs(cli.NormalizeArgs(cmd, os.Args[1:]))
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
