// Command gasfocus estimates monthly calibration-gas consumption for gas
// detection instrument fleets.
package main

import (
	"os"

	"github.com/rshade/gasfocus/internal/cli"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
