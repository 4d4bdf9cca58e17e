package main

import (
	"fmt"
	"os"

	"github.com/sandeepkv93/taskline/internal/cli"
)

// Set with -ldflags at release build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "taskline failed: %v\n", err)
		os.Exit(1)
	}
}
