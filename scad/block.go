package scad

import "fmt"

// Block groups two objects as the braced statement pair "{ a; b; }". It is
// the child a boolean operator is applied to.
type Block[D Dim] struct {
	A, B Object[D]
}

func (b Block[D]) Assign(f *Formatter) Assignment {
	x := b.A.Assign(f)
	y := b.B.Assign(f)
	return Inline("{ " + x.String() + "; " + y.String() + "; }")
}

func (b Block[D]) String() string {
	return ToScad(b)
}

func (b Block[D]) GoString() string {
	return fmt.Sprintf("{%#v; %#v}", b.A, b.B)
}

func (b Block[D]) IntoObject() Object[D] {
	return NewObject[D](b)
}

// setOp is a boolean operator taking no arguments.
type setOp string

func (s setOp) Assign(f *Formatter) Assignment {
	return f.Call(string(s), nil, true)
}

func (s setOp) String() string     { return ToScad(s) }
func (s setOp) GoString() string   { return string(s) + "()" }
func (s setOp) AppliesToChildren() {}

func UnionOp() Template        { return setOp("union") }
func DifferenceOp() Template   { return setOp("difference") }
func IntersectionOp() Template { return setOp("intersection") }
func MinkowskiOp() Template    { return setOp("minkowski") }
func HullOp() Template         { return setOp("hull") }

func combine[D Dim](a Object[D], b IntoObject[D], op Template) Object[D] {
	return Block[D]{A: a, B: b.IntoObject()}.IntoObject().Then(op)
}

// Union folds objs left to right into nested unions of pairs.
func Union[D Dim](a IntoObject[D], objs ...IntoObject[D]) Object[D] {
	return fold(a, objs, UnionOp())
}

// Difference subtracts each of objs from a in turn.
func Difference[D Dim](a IntoObject[D], objs ...IntoObject[D]) Object[D] {
	return fold(a, objs, DifferenceOp())
}

func Intersection[D Dim](a IntoObject[D], objs ...IntoObject[D]) Object[D] {
	return fold(a, objs, IntersectionOp())
}

func fold[D Dim](a IntoObject[D], objs []IntoObject[D], op Template) Object[D] {
	res := a.IntoObject()
	for _, o := range objs {
		res = combine(res, o, op)
	}
	return res
}
