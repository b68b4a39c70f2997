package prim

import (
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/go-solid/scad"
)

func ref[T any](v T) *T { return &v }

// fields collects the set fields of a builder for GoString.
type fields []string

func field[T any](fs fields, name string, v *T) fields {
	if v == nil {
		return fs
	}
	return append(fs, fmt.Sprintf("%s: %v", name, *v))
}

func (fs fields) describe(name string) string {
	if len(fs) == 0 {
		return name
	}
	return name + " { " + strings.Join(fs, ", ") + " }"
}

// clonePaths copies p and each of its index lists.
func clonePaths(p scad.Paths) scad.Paths {
	if p == nil {
		return nil
	}
	res := make(scad.Paths, len(p))
	for i, ix := range p {
		res[i] = slices.Clone(ix)
	}
	return res
}

// render is the String of every builder.
func render(v scad.Scad) string {
	return scad.ToScad(v)
}
