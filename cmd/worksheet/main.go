// Command worksheet generates seeded, reproducible math worksheets.
package main

import (
	"context"
	"os"

	"github.com/nobu-k/100-math-sub004/internal/cli"
)

// Version is set at build time via -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	if err := cli.Execute(context.Background(), Version); err != nil {
		os.Exit(1)
	}
}
