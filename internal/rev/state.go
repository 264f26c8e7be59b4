// SPDX-License-Identifier: Apache-2.0

// Package rev tracks the per-function state of a decompilation campaign:
// which functions of the target binary exist, how hard each looks, how
// many attempts it has burned, and which ones already match the reference.
package rev

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FuncInfo is the persisted record of one target function.
type FuncInfo struct {
	Size         uint64  `json:"size"`
	Instructions int     `json:"instructions"`
	Branches     int     `json:"branches"`
	Calls        int     `json:"calls"`
	Attempts     int     `json:"attempts"`
	Status       string  `json:"status"`
	Complexity   float64 `json:"complexity,omitempty"`
}

// State maps function name to its record.
type State map[string]*FuncInfo

// LoadState reads the state file written by a previous --analyze run.
func LoadState(path string) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("state file %s not found, analyze the target binary first", path)
		}
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	state := State{}
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return state, nil
}

// Save writes the state file, creating its directory if needed.
func (s State) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
