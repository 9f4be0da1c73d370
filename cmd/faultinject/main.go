// faultinject CLI - drives fault injection in processes embedding the harness.
package main

import (
	"fmt"
	"os"

	"github.com/getmockd/faultinject/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	if err := cli.Execute(Version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
