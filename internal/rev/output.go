// SPDX-License-Identifier: Apache-2.0

package rev

import (
	"fmt"
	"io"
	"strings"
)

const tableWidth = 80

// PrintAll writes the candidate table in score order.
func PrintAll(w io.Writer, s State, maxAttempts int) {
	cands := Candidates(s, maxAttempts)

	fmt.Fprintf(w, "%-40s %-12s %-10s %-12s\n", "FUNCTION", "COMPLEXITY", "ATTEMPTS", "INSTRUCTIONS")
	fmt.Fprintln(w, strings.Repeat("-", tableWidth))

	for _, c := range cands {
		fmt.Fprintf(w, "%-40s %-12.3f %-10d %-12d\n",
			truncName(c.Name), c.Complexity, c.Attempts, c.Instructions)
	}

	fmt.Fprintln(w, strings.Repeat("-", tableWidth))
	fmt.Fprintf(w, "Total candidates: %d\n", len(cands))
}

func truncName(name string) string {
	r := []rune(name)
	if len(r) > 38 {
		return string(r[:35]) + "..."
	}
	return name
}
