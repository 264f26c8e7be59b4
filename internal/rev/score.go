// SPDX-License-Identifier: Apache-2.0

package rev

import (
	"math"
	"sort"
)

// Score weights. Branches cost more than straight-line instructions, calls
// mean dependencies on other functions, size is a tiebreaker.
const (
	weightInstructions = 0.1
	weightBranches     = 0.3
	weightCalls        = 0.2
	weightSize         = 0.1
)

// ComplexityScore estimates how hard the function is to decompile. Lower
// scores mean simpler functions and higher priority. Rounded to 3 places
// so scores stay stable across save/load cycles.
func (f *FuncInfo) ComplexityScore() float64 {
	score := float64(f.Instructions)*weightInstructions +
		float64(f.Branches)*weightBranches +
		float64(f.Calls)*weightCalls +
		float64(f.Size)/100*weightSize
	return math.Round(score*1000) / 1000
}

// Score returns the stored complexity, computing it when the record
// predates scoring. Every consumer of a function's score goes through
// here so a stale stored value reads the same everywhere.
func (f *FuncInfo) Score() float64 {
	if f.Complexity != 0 {
		return f.Complexity
	}
	return f.ComplexityScore()
}

// Candidate is one function eligible for a decompilation attempt.
type Candidate struct {
	Name         string
	Complexity   float64
	Attempts     int
	Instructions int
	Size         uint64
}

// Candidates filters the state down to attemptable functions, ordered by
// ascending complexity, then attempts, then name.
func Candidates(s State, maxAttempts int) []Candidate {
	var out []Candidate
	for name, fi := range s {
		if fi.Status == StatusMatched {
			continue
		}
		if fi.Attempts >= maxAttempts {
			continue
		}
		if fi.Instructions < MinInstructions {
			continue
		}
		out = append(out, Candidate{
			Name:         name,
			Complexity:   fi.Score(),
			Attempts:     fi.Attempts,
			Instructions: fi.Instructions,
			Size:         fi.Size,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Complexity != out[j].Complexity {
			return out[i].Complexity < out[j].Complexity
		}
		if out[i].Attempts != out[j].Attempts {
			return out[i].Attempts < out[j].Attempts
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// SelectNext returns the name of the best next function to attempt, or
// false when nothing is eligible.
func SelectNext(s State, maxAttempts int) (string, bool) {
	cands := Candidates(s, maxAttempts)
	if len(cands) == 0 {
		return "", false
	}
	return cands[0].Name, true
}

// UpdateScores recomputes and stores the complexity of every record.
func UpdateScores(s State) {
	for _, fi := range s {
		fi.Complexity = fi.ComplexityScore()
	}
}
