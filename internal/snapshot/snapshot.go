// Package snapshot compares rendered programs with golden files under
// testdata/snapshots.
//
// Set SOLID_UPDATE_SNAPSHOTS=1 to rewrite the golden files from the
// current output.
package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Dir is where golden files are kept, relative to the package under test.
var Dir = filepath.Join("testdata", "snapshots")

const updateEnv = "SOLID_UPDATE_SNAPSHOTS"

func updating() bool {
	v := os.Getenv(updateEnv)
	return v == "1" || v == "true"
}

// Check compares got with the golden file <Dir>/<name>.scad. Trailing
// newlines are ignored.
func Check(t testing.TB, name, got string) {
	t.Helper()
	path := filepath.Join(Dir, name+".scad")
	got = strings.TrimRight(got, "\n")
	if updating() {
		if err := os.MkdirAll(Dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(got+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		return
	}
	d, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		t.Fatalf("no snapshot %s; run with %s=1 to create it", path, updateEnv)
	}
	if err != nil {
		t.Fatal(err)
	}
	want := strings.TrimRight(string(d), "\n")
	if want != got {
		t.Errorf("snapshot %s mismatch (-want +got):\n%s", path, Diff(want, got))
	}
}

// Diff returns a line diff of want and got, one line per row prefixed with
// "-", "+" or a space.
func Diff(want, got string) string {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToRunes(want, got)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(a, b, false), lines)
	var sb strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(ln)
			if !strings.HasSuffix(ln, "\n") {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}
