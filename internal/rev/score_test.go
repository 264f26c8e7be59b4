// SPDX-License-Identifier: Apache-2.0

package rev

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComplexityScore(t *testing.T) {
	tests := []struct {
		name string
		fi   FuncInfo
		want float64
	}{
		{
			name: "typical function",
			fi:   FuncInfo{Instructions: 10, Branches: 2, Calls: 1, Size: 150},
			want: 1.95,
		},
		{
			name: "straight line",
			fi:   FuncInfo{Instructions: 4, Size: 100},
			want: 0.5,
		},
		{
			name: "empty record",
			fi:   FuncInfo{},
			want: 0,
		},
		{
			name: "rounds to 3 places",
			fi:   FuncInfo{Instructions: 1, Size: 33},
			want: 0.133,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fi.ComplexityScore(); got != tt.want {
				t.Errorf("ComplexityScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func testState() State {
	return State{
		"add_numbers":  {Size: 20, Instructions: 4, Status: StatusUnmatched, Complexity: 0.42},
		"bubble_sort":  {Size: 180, Instructions: 40, Branches: 8, Calls: 1, Status: StatusUnmatched, Complexity: 6.78},
		"fibonacci":    {Size: 60, Instructions: 15, Branches: 2, Calls: 2, Status: StatusMatched, Complexity: 2.56},
		"square":       {Size: 15, Instructions: 3, Status: StatusUnmatched, Attempts: 10, Complexity: 0.32},
		"_thunk":       {Size: 4, Instructions: 1, Status: StatusUnmatched, Complexity: 0.1},
		"max_of_three": {Size: 30, Instructions: 8, Branches: 2, Status: StatusUnmatched, Attempts: 3, Complexity: 1.43},
	}
}

func TestCandidates(t *testing.T) {
	got := Candidates(testState(), MaxAttempts)

	// fibonacci is matched, square is out of attempts, _thunk is below the
	// instruction floor.
	want := []Candidate{
		{Name: "add_numbers", Complexity: 0.42, Instructions: 4, Size: 20},
		{Name: "max_of_three", Complexity: 1.43, Attempts: 3, Instructions: 8, Size: 30},
		{Name: "bubble_sort", Complexity: 6.78, Instructions: 40, Size: 180},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Candidates() mismatch (-want +got):\n%s", diff)
	}
}

func TestCandidatesComputesMissingScores(t *testing.T) {
	s := State{
		"sum_array": {Size: 100, Instructions: 12, Branches: 2, Status: StatusUnmatched},
	}
	got := Candidates(s, MaxAttempts)
	if len(got) != 1 {
		t.Fatalf("Candidates() returned %d entries, want 1", len(got))
	}
	if want := 1.9; got[0].Complexity != want {
		t.Errorf("Complexity = %v, want computed %v", got[0].Complexity, want)
	}
}

func TestCandidatesOrdering(t *testing.T) {
	s := State{
		"b": {Instructions: 5, Status: StatusUnmatched, Complexity: 1.0, Attempts: 2},
		"a": {Instructions: 5, Status: StatusUnmatched, Complexity: 1.0, Attempts: 2},
		"c": {Instructions: 5, Status: StatusUnmatched, Complexity: 1.0, Attempts: 1},
		"d": {Instructions: 5, Status: StatusUnmatched, Complexity: 0.5, Attempts: 9},
	}
	got := Candidates(s, MaxAttempts)
	wantOrder := []string{"d", "c", "a", "b"}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Fatalf("Candidates()[%d] = %s, want %s", i, got[i].Name, name)
		}
	}
}

func TestScore(t *testing.T) {
	stored := &FuncInfo{Instructions: 10, Branches: 2, Calls: 1, Size: 150, Complexity: 9.99}
	if got := stored.Score(); got != 9.99 {
		t.Errorf("Score() = %v, want stored 9.99", got)
	}
	unscored := &FuncInfo{Instructions: 10, Branches: 2, Calls: 1, Size: 150}
	if got := unscored.Score(); got != 1.95 {
		t.Errorf("Score() = %v, want computed 1.95", got)
	}
}

func TestSelectNext(t *testing.T) {
	name, ok := SelectNext(testState(), MaxAttempts)
	if !ok || name != "add_numbers" {
		t.Errorf("SelectNext() = %q, %v, want \"add_numbers\", true", name, ok)
	}

	if name, ok := SelectNext(State{}, MaxAttempts); ok {
		t.Errorf("SelectNext(empty) = %q, %v, want ok=false", name, ok)
	}
}

func TestUpdateScores(t *testing.T) {
	s := State{
		"stale": {Instructions: 10, Branches: 2, Calls: 1, Size: 150, Complexity: 99},
	}
	UpdateScores(s)
	if got, want := s["stale"].Complexity, 1.95; got != want {
		t.Errorf("Complexity after update = %v, want %v", got, want)
	}
}
