package main

import (
	"os"

	"github.com/tgienger/stt/internal/cli"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Keep the old --version flag working alongside the version command
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		os.Args = []string{os.Args[0], "version"}
	}

	cli.Version, cli.Commit, cli.Date = version, commit, date

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
