package scene

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/signadot/go-solid/scad"
)

// args gives typed access to the arguments of one node. The first error is
// kept and later accessors return absent values.
type args struct {
	path string
	m    map[string]any
	used map[string]bool
	err  error
}

func newArgs(path string, v any, first string) (*args, error) {
	a := &args{path: path, m: map[string]any{}, used: map[string]bool{}}
	switch x := v.(type) {
	case nil:
	case map[string]any:
		a.m = x
	default:
		if first == "" {
			return nil, fmt.Errorf("%w: %s: takes no arguments", ErrSyntax, path)
		}
		a.m[first] = x
	}
	return a, nil
}

func (a *args) fail(name, format string, v ...any) {
	if a.err == nil {
		a.err = fmt.Errorf("%w: %s.%s: %s", ErrSyntax, a.path, name, fmt.Sprintf(format, v...))
	}
}

func (a *args) get(name string) (any, bool) {
	a.used[name] = true
	v, ok := a.m[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, a.err == nil
}

// need records an error if name is absent.
func (a *args) need(name string) {
	if _, ok := a.m[name]; !ok {
		a.fail(name, "required")
	}
}

// done reports the first error, or an error naming unknown arguments.
func (a *args) done() error {
	if a.err != nil {
		return a.err
	}
	var unknown []string
	for k := range a.m {
		if !a.used[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) != 0 {
		slices.Sort(unknown)
		return fmt.Errorf("%w: %s: unknown arguments %s", ErrSyntax, a.path, strings.Join(unknown, ", "))
	}
	return nil
}

func (a *args) number(name string) *float64 {
	v, ok := a.get(name)
	if !ok {
		return nil
	}
	f, ok := toFloat(v)
	if !ok {
		a.fail(name, "expected a number, got %T", v)
		return nil
	}
	if checkFinite(f) != nil {
		a.fail(name, "expected a finite number, got %v", f)
		return nil
	}
	return &f
}

func (a *args) boolean(name string) *bool {
	v, ok := a.get(name)
	if !ok {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		a.fail(name, "expected a boolean, got %T", v)
		return nil
	}
	return &b
}

func (a *args) str(name string) *string {
	v, ok := a.get(name)
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		a.fail(name, "expected a string, got %T", v)
		return nil
	}
	return &s
}

// vector reads a list of n numbers. A single number is repeated when splat
// is set.
func (a *args) vector(name string, n int, splat bool) []float64 {
	v, ok := a.get(name)
	if !ok {
		return nil
	}
	return a.floats(name, v, n, splat)
}

func (a *args) floats(name string, v any, n int, splat bool) []float64 {
	if f, ok := toFloat(v); ok && splat {
		if checkFinite(f) != nil {
			a.fail(name, "expected a finite number, got %v", f)
			return nil
		}
		res := make([]float64, n)
		for i := range res {
			res[i] = f
		}
		return res
	}
	xs, ok := v.([]any)
	if !ok || len(xs) != n {
		a.fail(name, "expected a list of %d numbers", n)
		return nil
	}
	res := make([]float64, n)
	for i, x := range xs {
		f, ok := toFloat(x)
		if !ok {
			a.fail(name, "element %d: expected a number, got %T", i, x)
			return nil
		}
		if checkFinite(f) != nil {
			a.fail(name, "element %d: expected a finite number, got %v", i, f)
			return nil
		}
		res[i] = f
	}
	return res
}

// lists reads a list of lists of n numbers each, or of any length when n
// is zero.
func (a *args) lists(name string, n int) [][]float64 {
	v, ok := a.get(name)
	if !ok {
		return nil
	}
	xs, ok := v.([]any)
	if !ok {
		a.fail(name, "expected a list")
		return nil
	}
	res := make([][]float64, len(xs))
	for i, x := range xs {
		m := n
		if m == 0 {
			l, ok := x.([]any)
			if !ok {
				a.fail(name, "element %d: expected a list", i)
				return nil
			}
			m = len(l)
		}
		res[i] = a.floats(fmt.Sprintf("%s[%d]", name, i), x, m, false)
		if a.err != nil {
			return nil
		}
	}
	return res
}

func (a *args) length(name string) *scad.Length {
	f := a.number(name)
	if f == nil {
		return nil
	}
	v := scad.Length(*f)
	return &v
}

func (a *args) angle(name string) *scad.Angle {
	f := a.number(name)
	if f == nil {
		return nil
	}
	v := scad.Angle(*f)
	return &v
}

func (a *args) scalar(name string) *scad.Scalar {
	f := a.number(name)
	if f == nil {
		return nil
	}
	v := scad.Scalar(*f)
	return &v
}

func (a *args) length2(name string) *scad.Length2 {
	xs := a.vector(name, 2, true)
	if xs == nil {
		return nil
	}
	return &scad.Length2{scad.Length(xs[0]), scad.Length(xs[1])}
}

func (a *args) length3(name string) *scad.Length3 {
	xs := a.vector(name, 3, true)
	if xs == nil {
		return nil
	}
	return &scad.Length3{scad.Length(xs[0]), scad.Length(xs[1]), scad.Length(xs[2])}
}

func (a *args) scalar3(name string) *scad.Scalar3 {
	xs := a.vector(name, 3, true)
	if xs == nil {
		return nil
	}
	return &scad.Scalar3{scad.Scalar(xs[0]), scad.Scalar(xs[1]), scad.Scalar(xs[2])}
}

func (a *args) points2(name string) scad.Points2 {
	ls := a.lists(name, 2)
	if ls == nil {
		return nil
	}
	res := make(scad.Points2, len(ls))
	for i, l := range ls {
		res[i] = scad.Length2{scad.Length(l[0]), scad.Length(l[1])}
	}
	return res
}

func (a *args) points3(name string) scad.Points3 {
	ls := a.lists(name, 3)
	if ls == nil {
		return nil
	}
	res := make(scad.Points3, len(ls))
	for i, l := range ls {
		res[i] = scad.Length3{scad.Length(l[0]), scad.Length(l[1]), scad.Length(l[2])}
	}
	return res
}

func (a *args) paths(name string) scad.Paths {
	ls := a.lists(name, 0)
	if ls == nil {
		return nil
	}
	res := make(scad.Paths, len(ls))
	for i, l := range ls {
		ix := make(scad.Indices, len(l))
		for j, f := range l {
			if f != math.Trunc(f) || f < 0 {
				a.fail(name, "element %d: index %v is not a non-negative integer", i, f)
				return nil
			}
			ix[j] = int(f)
		}
		res[i] = ix
	}
	return res
}
