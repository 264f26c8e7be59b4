// SPDX-License-Identifier: Apache-2.0

package rev

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAnalyzeBinaryMissing(t *testing.T) {
	if _, err := AnalyzeBinary(filepath.Join(t.TempDir(), "nope"), 16); err == nil {
		t.Fatal("AnalyzeBinary() on a missing file returned nil error")
	}
}

func TestAnalyzeBinaryNotELF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage")
	if err := os.WriteFile(path, []byte("definitely not an ELF"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := AnalyzeBinary(path, 16); err == nil {
		t.Fatal("AnalyzeBinary() on a non-ELF file returned nil error")
	}
}
