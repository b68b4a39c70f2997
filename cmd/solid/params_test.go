package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

func TestParamFunc(t *testing.T) {
	params := map[string]any{}
	for _, a := range []string{"w=40", "name=plate", "hole.r=2.5", "hole.at=[1, 2]", "on=true"} {
		if err := paramFunc(params, a); err != nil {
			t.Fatalf("%s: %v", a, err)
		}
	}
	got := fmt.Sprint(params)
	want := "map[hole:map[at:[1 2] r:2.5] name:plate on:true w:40]"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("params (-want +got):\n%s", diff)
	}
}

func TestParamFuncErrors(t *testing.T) {
	params := map[string]any{"w": 1}
	for _, a := range []string{"w", "w.x=1"} {
		if err := paramFunc(params, a); !errors.Is(err, cli.ErrUsage) {
			t.Errorf("%s: got %v, want usage error", a, err)
		}
	}
}

func TestLoadScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plate.yaml")
	merge := filepath.Join(dir, "merge.yaml")
	write := func(p, s string) {
		if err := os.WriteFile(p, []byte(s), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write(path, "params:\n  w: 10\nroot:\n  cube: {size: \".[w]\"}\n")
	write(merge, "params:\n  w: 20\n")

	s, err := loadScene(SceneConfig{Merge: merge, Params: map[string]any{"w": 30}}, path)
	if err != nil {
		t.Fatal(err)
	}
	sh, err := s.Build()
	if err != nil {
		t.Fatal(err)
	}
	if got := sh.String(); !strings.Contains(got, "cube(size=[30, 30, 30])") {
		t.Errorf("override not applied:\n%s", got)
	}
	if _, err := loadScene(SceneConfig{Patch: filepath.Join(dir, "missing.json")}, path); err == nil {
		t.Errorf("expected error for missing patch file")
	}
}
