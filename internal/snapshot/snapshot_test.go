package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiff(t *testing.T) {
	want := "a\nb\nc"
	got := "a\nB\nc"
	if diff := cmp.Diff(" a\n-b\n+B\n c\n", Diff(want, got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if Diff("x", "x") != " x\n" {
		t.Errorf("equal input %q", Diff("x", "x"))
	}
}

func TestCheckUpdate(t *testing.T) {
	save := Dir
	defer func() { Dir = save }()
	Dir = t.TempDir()

	t.Setenv(updateEnv, "1")
	Check(t, "model", "module _v0() { cube(); }\n")
	d, err := os.ReadFile(filepath.Join(Dir, "model.scad"))
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "module _v0() { cube(); }\n" {
		t.Errorf("written %q", d)
	}

	t.Setenv(updateEnv, "")
	Check(t, "model", "module _v0() { cube(); }")
}
