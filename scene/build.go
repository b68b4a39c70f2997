package scene

import (
	"fmt"

	"github.com/signadot/go-solid/debug"
	"github.com/signadot/go-solid/scad"
)

const (
	childrenKey = "children"
	thenKey     = "then"
)

// Build resolves parameters and compiles the root node. The result has the
// scene's dimension.
func (s *Scene) Build() (Shape, error) {
	env, err := resolveParams(s.Params)
	if err != nil {
		return Shape{}, err
	}
	root, err := expand(s.Root, env)
	if err != nil {
		return Shape{}, fmt.Errorf("%w: %w", ErrParam, err)
	}
	sh, err := buildNode("root", root)
	if err != nil {
		return Shape{}, err
	}
	if sh.Dims() != s.Dims {
		return Shape{}, fmt.Errorf("%w: root: scene is %dD, root node is %dD", ErrDimension, s.Dims, sh.Dims())
	}
	return sh, nil
}

// split returns the primitive key of node and its argument value.
func split(path string, v any) (string, any, map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return "", nil, nil, fmt.Errorf("%w: %s: expected a mapping, got %T", ErrSyntax, path, v)
	}
	var (
		name string
		argv any
	)
	for k, kv := range m {
		if k == childrenKey || k == thenKey {
			continue
		}
		if name != "" {
			return "", nil, nil, fmt.Errorf("%w: %s: more than one primitive (%s, %s)", ErrSyntax, path, min(name, k), max(name, k))
		}
		name, argv = k, kv
	}
	if name == "" {
		return "", nil, nil, fmt.Errorf("%w: %s: no primitive", ErrSyntax, path)
	}
	return name, argv, m, nil
}

func lookup(path, name string, argv any) (entry, *args, error) {
	e, ok := registry[name]
	if !ok {
		return entry{}, nil, fmt.Errorf("%w: %s: %q", ErrUnknownPrimitive, path, name)
	}
	a, err := newArgs(path+"."+name, argv, e.first)
	if err != nil {
		return entry{}, nil, err
	}
	return e, a, nil
}

func buildNode(path string, v any) (Shape, error) {
	name, argv, m, err := split(path, v)
	if err != nil {
		return Shape{}, err
	}
	e, a, err := lookup(path, name, argv)
	if err != nil {
		return Shape{}, err
	}
	if debug.Scene() {
		debug.Logf("scene: %s %s (%s)\n", path, name, e.Kind)
	}
	var sh Shape
	if e.Kind == KindShape {
		if _, ok := m[childrenKey]; ok {
			return Shape{}, fmt.Errorf("%w: %s: %s takes no children", ErrSyntax, path, name)
		}
		sh, err = buildShape(path, e, a)
	} else {
		var kids []Shape
		kids, err = buildChildren(path, m[childrenKey])
		if err != nil {
			return Shape{}, err
		}
		if e.Kind == KindSet {
			if err := a.done(); err != nil {
				return Shape{}, err
			}
			sh, err = combine(path, name, kids)
		} else {
			var in Shape
			in, err = combine(path, "union", kids)
			if err != nil {
				return Shape{}, err
			}
			sh, err = apply(path+"."+name, e, a, in)
		}
	}
	if err != nil {
		return Shape{}, err
	}
	return buildThen(path, m[thenKey], sh)
}

func buildShape(path string, e entry, a *args) (Shape, error) {
	v := e.build(a)
	if err := a.done(); err != nil {
		return Shape{}, err
	}
	switch x := v.(type) {
	case scad.IntoObject[scad.D2]:
		return shape2(x.IntoObject()), nil
	case scad.IntoObject[scad.D3]:
		return shape3(x.IntoObject()), nil
	}
	panic(fmt.Sprintf("scene: %s: %s built %T", path, e.Name, v))
}

func buildChildren(path string, v any) ([]Shape, error) {
	xs, ok := v.([]any)
	if !ok || len(xs) == 0 {
		return nil, fmt.Errorf("%w: %s: children must be a non-empty list", ErrSyntax, path)
	}
	kids := make([]Shape, len(xs))
	for i, x := range xs {
		sh, err := buildNode(fmt.Sprintf("%s.%s[%d]", path, childrenKey, i), x)
		if err != nil {
			return nil, err
		}
		kids[i] = sh
	}
	return kids, nil
}

func buildThen(path string, v any, sh Shape) (Shape, error) {
	if v == nil {
		return sh, nil
	}
	xs, ok := v.([]any)
	if !ok {
		return Shape{}, fmt.Errorf("%w: %s: then must be a list", ErrSyntax, path)
	}
	for i, x := range xs {
		p := fmt.Sprintf("%s.%s[%d]", path, thenKey, i)
		name, argv, m, err := split(p, x)
		if err != nil {
			return Shape{}, err
		}
		if len(m) != 1 {
			return Shape{}, fmt.Errorf("%w: %s: operators in then take no children", ErrSyntax, p)
		}
		e, a, err := lookup(p, name, argv)
		if err != nil {
			return Shape{}, err
		}
		if e.Kind == KindShape || e.Kind == KindSet {
			return Shape{}, fmt.Errorf("%w: %s: %s is a %s, not an operator", ErrSyntax, p, name, e.Kind)
		}
		sh, err = apply(p+"."+name, e, a, sh)
		if err != nil {
			return Shape{}, err
		}
	}
	return sh, nil
}

// apply pipes in through the operator built from e.
func apply(path string, e entry, a *args, in Shape) (Shape, error) {
	v := e.build(a)
	if err := a.done(); err != nil {
		return Shape{}, err
	}
	if e.Kind == KindOperator && e.In != in.Dims() {
		return Shape{}, fmt.Errorf("%w: %s: takes %dD input, got %dD", ErrDimension, path, e.In, in.Dims())
	}
	switch op := v.(type) {
	case scad.Template:
		if o, ok := in.Planar(); ok {
			return shape2(o.Then(op)), nil
		}
		o, _ := in.Solid()
		return shape3(o.Then(op)), nil
	case scad.Operator[scad.D2, scad.D3]:
		o, _ := in.Planar()
		return shape3(scad.Apply[scad.D2, scad.D3](o, op)), nil
	case scad.Operator[scad.D3, scad.D2]:
		o, _ := in.Solid()
		return shape2(scad.Apply[scad.D3, scad.D2](o, op)), nil
	case scad.Operator[scad.D2, scad.D2]:
		o, _ := in.Planar()
		return shape2(o.Pipe(op)), nil
	}
	panic(fmt.Sprintf("scene: %s: %s built %T", path, e.Name, v))
}

// combine folds kids left to right with the named set operator. All kids
// must have the same dimension.
func combine(path, name string, kids []Shape) (Shape, error) {
	dims := kids[0].Dims()
	for i, k := range kids[1:] {
		if k.Dims() != dims {
			return Shape{}, fmt.Errorf("%w: %s.%s[%d]: %dD child after %dD %s[0]",
				ErrDimension, path, childrenKey, i+1, k.Dims(), dims, childrenKey)
		}
	}
	if dims == 2 {
		objs := make([]scad.Object[scad.D2], len(kids))
		for i, k := range kids {
			objs[i], _ = k.Planar()
		}
		return shape2(fold(name, objs)), nil
	}
	objs := make([]scad.Object[scad.D3], len(kids))
	for i, k := range kids {
		objs[i], _ = k.Solid()
	}
	return shape3(fold(name, objs)), nil
}

func fold[D scad.Dim](name string, objs []scad.Object[D]) scad.Object[D] {
	acc := objs[0]
	for _, o := range objs[1:] {
		switch name {
		case "union":
			acc = acc.Union(o)
		case "difference":
			acc = acc.Difference(o)
		case "intersection":
			acc = acc.Intersection(o)
		case "hull":
			acc = acc.Hull(o)
		case "minkowski":
			acc = acc.Minkowski(o)
		}
	}
	return acc
}
