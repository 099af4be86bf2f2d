package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Output is the destination for all messages. It defaults to stderr so that
// stdout stays reserved for the per-file status lines; tests swap it out.
var Output io.Writer = os.Stderr

var (
	HeaderColor  = color.New(color.FgBlue, color.Bold)
	InfoColor    = color.New(color.FgCyan)
	SuccessColor = color.New(color.FgGreen)
	ErrorColor   = color.New(color.FgRed)
)

func Header(format string, a ...interface{}) {
	HeaderColor.Fprintf(Output, format+"\n", a...)
}

func Info(format string, a ...interface{}) {
	InfoColor.Fprintf(Output, format+"\n", a...)
}

func Success(format string, a ...interface{}) {
	SuccessColor.Fprintf(Output, format+"\n", a...)
}

func Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(Output, format+"\n", a...)
}

// PrintRunSummary reports how many files were rewritten and how many were
// left as-is. In a dry run the counts describe what a real run would do.
func PrintRunSummary(fixed, unchanged []string, dryRun bool) {
	Header("\n--- Run Summary ---")

	if len(fixed) == 0 {
		Info("No files needed fixing.")
		return
	}

	verb := "Fixed"
	if dryRun {
		verb = "Would fix"
	}
	Success("%s %d file(s):", verb, len(fixed))
	for _, f := range fixed {
		fmt.Fprintf(Output, "  - %s\n", f)
	}
	if len(unchanged) > 0 {
		Info("Left %d file(s) unchanged.", len(unchanged))
	}
}
