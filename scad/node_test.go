package scad

import "fmt"

// leaf and move stand in for primitive and transform builders.

type leaf struct {
	name string
	size *Length3
	r    *Length
}

func (l leaf) Assign(f *Formatter) Assignment {
	return f.Call(l.name, []Arg{
		Opt(f, "size", l.size),
		Opt(f, "r", l.r),
	}, false)
}

func (l leaf) String() string   { return ToScad(l) }
func (l leaf) GoString() string { return fmt.Sprintf("%s(%v, %v)", l.name, l.size, l.r) }

func (l leaf) IntoObject() Object[D3] { return NewObject[D3](l) }

func ptr[T any](v T) *T { return &v }

func cube(x, y, z Length) leaf { return leaf{name: "cube", size: &Length3{x, y, z}} }
func sphere(r Length) leaf     { return leaf{name: "sphere", r: &r} }
func bare(name string) leaf    { return leaf{name: name} }

func translate(x, y, z Length) move { return move{v: Length3{x, y, z}} }
func up(z Length) lifted            { return lifted{z: &z} }

type move struct {
	v Length3
}

func (m move) Assign(f *Formatter) Assignment {
	return f.Call("translate", []Arg{Req(f, "v", m.v)}, true)
}

func (m move) String() string     { return ToScad(m) }
func (m move) GoString() string   { return fmt.Sprintf("translate(%v)", m.v) }
func (m move) AppliesToChildren() {}

// lifted is a module-template operator like the directional moves.
type lifted struct {
	z *Length
}

func (l lifted) Assign(f *Formatter) Assignment {
	name := f.Module("(z=undef) { translate([0, 0, z]) children(); }")
	return f.Call(name.String(), []Arg{Opt(f, "z", l.z)}, true)
}

func (l lifted) String() string     { return ToScad(l) }
func (l lifted) GoString() string   { return "up()" }
func (l lifted) AppliesToChildren() {}

// extrude lifts planar objects into solids.
type extrude struct {
	height Length
}

func (e extrude) Assign(f *Formatter) Assignment {
	return f.Call("linear_extrude", []Arg{Req(f, "height", e.height)}, true)
}

func (e extrude) String() string   { return ToScad(e) }
func (e extrude) GoString() string { return "linear_extrude()" }

func (e extrude) Apply(child Object[D2]) Object[D3] {
	return Wrap(NewObject[D3](e), child)
}
