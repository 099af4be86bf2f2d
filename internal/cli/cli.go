package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Usage prints the command usage and flag defaults.
func Usage() {
	fmt.Println("Usage: isofix [flags] <file1> [file2] ...")
	fmt.Println("\nRewrite @MainActor async setUp/tearDown overrides into synchronous")
	fmt.Println("overrides wrapped in MainActor.assumeIsolated.")
	fmt.Println("\nFlags:")
	pflag.PrintDefaults()
}

// Config holds all the command-line flag values plus the positional paths.
type Config struct {
	DryRun bool
	Quiet  bool
	Paths  []string
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() *Config {
	cfg := &Config{}

	pflag.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Print a unified diff of the would-be changes instead of writing files.")
	pflag.BoolVarP(&cfg.Quiet, "quiet", "q", false, "Suppress 'No changes' lines and the run summary.")

	pflag.Usage = Usage

	pflag.Parse()

	cfg.Paths = pflag.Args()
	return cfg
}
