package scad

import "fmt"

// Operator turns an object of dimension In into an object of dimension Out,
// usually by wrapping it: transforms and boolean collectors preserve the
// dimension, extrusions lift D2 to D3 and projections lower D3 to D2.
type Operator[In, Out Dim] interface {
	Apply(child Object[In]) Object[Out]
}

// Template is an operator value that works in any dimension, such as a
// translation. Its fragment is a call marked as applying to the children
// that follow it and does not depend on the child it is applied to.
type Template interface {
	Node
	AppliesToChildren()
}

// Apply pipes o through op.
func Apply[In, Out Dim](o IntoObject[In], op Operator[In, Out]) Object[Out] {
	return op.Apply(o.IntoObject())
}

// Same adapts t to an Operator of dimension D.
func Same[D Dim](t Template) Operator[D, D] {
	return same[D]{t: t}
}

type same[D Dim] struct {
	t Template
}

func (s same[D]) Apply(child Object[D]) Object[D] {
	return Wrap(NewObject[D](s.t), child)
}

// Wrap returns the object rendered as parent invoked on child. Operator
// implementations call it from Apply.
func Wrap[In, Out Dim](parent Object[Out], child Object[In]) Object[Out] {
	return NewObject[Out](Wrapped[In, Out]{Parent: parent, Child: child})
}

// Wrapped is an operator node applied to a child.
type Wrapped[In, Out Dim] struct {
	Parent Object[Out]
	Child  Object[In]
}

// Assign registers the child, then the parent's template, then the
// invocation of the one on the other. The parent's fragment does not depend
// on the child, so one definition serves every child it is applied to.
func (w Wrapped[In, Out]) Assign(f *Formatter) Assignment {
	child := w.Child.Assign(f)
	parent := w.Parent.Assign(f)
	return f.Emit(parent.String()+" "+child.String(), KindCall)
}

func (w Wrapped[In, Out]) String() string {
	return ToScad(w)
}

func (w Wrapped[In, Out]) GoString() string {
	return fmt.Sprintf("%#v.Then(%#v)", w.Child, w.Parent)
}
