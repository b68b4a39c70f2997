package scad

import "fmt"

// Object is a shared, immutable handle to a node of dimension D. Copying an
// Object is cheap and shares the node, so the same subtree can be attached
// under any number of parents.
//
// The zero Object holds no node and must not be rendered.
type Object[D Dim] struct {
	node Node
}

// NewObject wraps n. It panics if n is nil or is itself an object of another
// dimension.
func NewObject[D Dim](n Node) Object[D] {
	if n == nil {
		panic("scad: NewObject called with nil node")
	}
	if o, ok := n.(interface{ Dims() int }); ok && o.Dims() != dimsOf[D]() {
		panic(fmt.Sprintf("scad: %dD node wrapped as %dD object", o.Dims(), dimsOf[D]()))
	}
	return Object[D]{node: n}
}

// IntoObject is implemented by objects and by every value that can become
// one.
type IntoObject[D Dim] interface {
	IntoObject() Object[D]
}

func (o Object[D]) IntoObject() Object[D] { return o }

// Node returns the wrapped node.
func (o Object[D]) Node() Node { return o.node }

func (o Object[D]) IsZero() bool { return o.node == nil }

// Dims returns 2 or 3.
func (o Object[D]) Dims() int { return dimsOf[D]() }

func (o Object[D]) Assign(f *Formatter) Assignment {
	return o.node.Assign(f)
}

func (o Object[D]) String() string {
	if o.node == nil {
		return "<nil>"
	}
	return o.node.String()
}

func (o Object[D]) GoString() string {
	if o.node == nil {
		return "<nil>"
	}
	return o.node.GoString()
}

// Then applies the dimension-preserving operator t to o.
func (o Object[D]) Then(t Template) Object[D] {
	return Apply[D, D](o, Same[D](t))
}

// Pipe applies op to o.
func (o Object[D]) Pipe(op Operator[D, D]) Object[D] {
	return Apply[D, D](o, op)
}

func (o Object[D]) Union(b IntoObject[D]) Object[D] {
	return combine(o, b, UnionOp())
}

// Difference subtracts b from o.
func (o Object[D]) Difference(b IntoObject[D]) Object[D] {
	return combine(o, b, DifferenceOp())
}

func (o Object[D]) Intersection(b IntoObject[D]) Object[D] {
	return combine(o, b, IntersectionOp())
}

func (o Object[D]) Minkowski(b IntoObject[D]) Object[D] {
	return combine(o, b, MinkowskiOp())
}

// Hull is the convex hull of o and b.
func (o Object[D]) Hull(b IntoObject[D]) Object[D] {
	return combine(o, b, HullOp())
}
