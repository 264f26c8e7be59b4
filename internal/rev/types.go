// SPDX-License-Identifier: Apache-2.0

package rev

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

const (
	DefaultStateFile = "state/functions.json"

	// MaxAttempts is the default ceiling on failed decompilation attempts
	// before a function stops being offered as a candidate.
	MaxAttempts = 10

	// MinInstructions filters out stubs and thunks too small to be worth
	// attempting.
	MinInstructions = 3

	StatusUnmatched = "unmatched"
	StatusMatched   = "matched"
)

type Flags struct {
	ShowVersion bool

	StateFile string

	Analyze      string
	AnalyzeBatch uint

	ShowAll bool
	Update  bool
	TUI     bool

	MaxAttempts int
}

func (f *Flags) SetFlags() {
	flag.BoolVar(&f.ShowVersion, "version", false, "show rev version and exit")
	flag.StringVar(&f.StateFile, "state", DefaultStateFile, "path to the functions state file")
	flag.StringVar(&f.Analyze, "analyze", "", "scan the given target binary and rebuild the state file")
	flag.UintVar(&f.AnalyzeBatch, "analyze-batch", 16, "number of functions per scanning goroutine")
	flag.BoolVar(&f.ShowAll, "all", false, "print all candidate functions sorted by score")
	flag.BoolVar(&f.Update, "update", false, "recalculate complexity scores and save")
	flag.BoolVar(&f.TUI, "tui", false, "browse candidates in an interactive TUI")
	flag.IntVar(&f.MaxAttempts, "max-attempts", MaxAttempts, "skip functions with this many failed attempts")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "    With no options, prints the next recommended function.\n")
		fmt.Fprintf(os.Stderr, "    Available options:\n")
		flag.PrintDefaults()
	}
}

func (f *Flags) Parse() {
	flag.Parse()
}
