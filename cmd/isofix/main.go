package main

import (
	"os"

	"github.com/xctools/isofix/internal/app"
	"github.com/xctools/isofix/internal/cli"
	"github.com/xctools/isofix/internal/ui"
)

func main() {
	os.Exit(run(cli.ParseFlags()))
}

// run executes one invocation and returns the process exit code. With no
// paths it prints the usage message and fails without touching anything.
func run(cfg *cli.Config) int {
	if len(cfg.Paths) == 0 {
		cli.Usage()
		return 1
	}

	if err := app.New(cfg).Run(); err != nil {
		ui.Error("Error: %v", err)
		return 1
	}
	return 0
}
