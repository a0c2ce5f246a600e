package main

import (
	"os"

	"github.com/josephcopenhaver/rfc4648/internal/cli"
)

// Set via ldflags.
var (
	commit  = "HEAD"
	version = "latest"
)

func main() {
	if err := cli.Execute(version, commit); err != nil {
		os.Exit(1)
	}
}
