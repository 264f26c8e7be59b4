// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/quantbagel/Claude-reverse/internal/rev"
	"github.com/quantbagel/Claude-reverse/tui"
)

// Set at build time via -ldflags.
var version = "dev"

func main() {
	flags := rev.Flags{}
	flags.SetFlags()
	flags.Parse()

	if flags.ShowVersion {
		fmt.Printf("rev %s\n", version)
		os.Exit(0)
	}

	if flags.Analyze != "" {
		state, err := rev.AnalyzeBinary(flags.Analyze, flags.AnalyzeBatch)
		if err != nil {
			log.Fatalf("Failed to analyze %s: %s", flags.Analyze, err)
		}
		if err := state.Save(flags.StateFile); err != nil {
			log.Fatalf("Failed to save state: %s", err)
		}
		log.Printf("Wrote %d function records to %s", len(state), flags.StateFile)
		return
	}

	state, err := rev.LoadState(flags.StateFile)
	if err != nil {
		log.Fatalf("Failed to load state: %s", err)
	}

	switch {
	case flags.Update:
		rev.UpdateScores(state)
		if err := state.Save(flags.StateFile); err != nil {
			log.Fatalf("Failed to save state: %s", err)
		}
		fmt.Printf("Updated complexity scores for %d functions.\n", len(state))

	case flags.TUI:
		app := tui.New(state, flags.MaxAttempts)
		if err := app.Run(); err != nil {
			log.Fatalf("TUI error: %s", err)
		}

	case flags.ShowAll:
		rev.PrintAll(os.Stdout, state, flags.MaxAttempts)

	default:
		name, ok := rev.SelectNext(state, flags.MaxAttempts)
		if !ok {
			fmt.Fprintln(os.Stderr, "No functions available to attempt.")
			os.Exit(1)
		}
		fmt.Println(name)
	}
}
