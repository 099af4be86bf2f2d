package app

import (
	"fmt"
	"io"
	"os"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/xctools/isofix/internal/cli"
	"github.com/xctools/isofix/internal/ui"
	"github.com/xctools/isofix/rewrite"
)

// App orchestrates a rewrite run over the configured file paths.
type App struct {
	cfg *cli.Config
	out io.Writer

	fixed     []string
	unchanged []string
}

// New creates a new App instance.
func New(cfg *cli.Config) *App {
	return &App{cfg: cfg, out: os.Stdout}
}

// Run processes each configured path in order. Processing is sequential and
// stops at the first file that cannot be read or written; paths after it are
// left untouched.
func (a *App) Run() error {
	for _, path := range a.cfg.Paths {
		if err := a.ProcessFile(path); err != nil {
			return err
		}
	}
	if !a.cfg.Quiet {
		ui.PrintRunSummary(a.fixed, a.unchanged, a.cfg.DryRun)
	}
	return nil
}

// ProcessFile reads path, applies the rewrite, and writes the result back in
// place only if it differs from what was read. The file's permission bits
// are preserved on write.
func (a *App) ProcessFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	content := string(data)
	modified := rewrite.Transform(content)

	if modified == content {
		a.unchanged = append(a.unchanged, path)
		if !a.cfg.Quiet {
			fmt.Fprintf(a.out, "No changes: %s\n", path)
		}
		return nil
	}

	if a.cfg.DryRun {
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(content),
			B:        difflib.SplitLines(modified),
			FromFile: "a/" + path,
			ToFile:   "b/" + path,
			Context:  3,
		})
		if err != nil {
			return fmt.Errorf("failed to diff %s: %w", path, err)
		}
		fmt.Fprint(a.out, diff)
		fmt.Fprintf(a.out, "Would fix: %s\n", path)
		a.fixed = append(a.fixed, path)
		return nil
	}

	if err := os.WriteFile(path, []byte(modified), info.Mode()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(a.out, "Fixed: %s\n", path)
	a.fixed = append(a.fixed, path)
	return nil
}
