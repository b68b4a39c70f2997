package prim

import (
	"fmt"

	"github.com/signadot/go-solid/scad"
)

// Ext is a convenience operator implemented as a module definition plus a
// call to it. The module body is registered once per render however many
// times the operator is used.
type Ext struct {
	name string
	body string
	args []extArg
}

type extArg struct {
	name string
	v    scad.Scad
}

func newExt(name, body string, args ...extArg) Ext {
	return Ext{name: name, body: body, args: args}
}

func arg(name string, v scad.Scad) extArg { return extArg{name: name, v: v} }

// set returns a copy of e with the argument called name replaced.
func (e Ext) set(name string, v scad.Scad) Ext {
	args := make([]extArg, len(e.args))
	copy(args, e.args)
	for i := range args {
		if args[i].name == name {
			args[i].v = v
		}
	}
	e.args = args
	return e
}

func (e Ext) Assign(f *scad.Formatter) scad.Assignment {
	mod := f.Module(e.body)
	args := make([]scad.Arg, len(e.args))
	for i, a := range e.args {
		if a.v == nil {
			args[i] = scad.Arg{Name: a.name}
			continue
		}
		args[i] = scad.Req(f, a.name, a.v)
	}
	return f.Call(mod.String(), args, true)
}

func (e Ext) String() string { return render(e) }

func (e Ext) GoString() string {
	var fs fields
	for _, a := range e.args {
		if a.v != nil {
			fs = append(fs, fmt.Sprintf("%s: %v", a.name, a.v))
		}
	}
	return fs.describe(e.name)
}

func (e Ext) AppliesToChildren() {}

// Directional moves.

func Up(z scad.Length) Ext {
	return newExt("Up", "(z=undef) { translate([0, 0, z]) children(); }", arg("z", z))
}

func Down(z scad.Length) Ext {
	return newExt("Down", "(z=undef) { translate([0, 0, -z]) children(); }", arg("z", z))
}

func Left(x scad.Length) Ext {
	return newExt("Left", "(x=undef) { translate([-x, 0, 0]) children(); }", arg("x", x))
}

func Right(x scad.Length) Ext {
	return newExt("Right", "(x=undef) { translate([x, 0, 0]) children(); }", arg("x", x))
}

func Fwd(y scad.Length) Ext {
	return newExt("Fwd", "(y=undef) { translate([0, y, 0]) children(); }", arg("y", y))
}

// Back moves toward negative y.
func Back(y scad.Length) Ext {
	return newExt("Back", "(y=undef) { translate([0, -y, 0]) children(); }", arg("y", y))
}

// Axis rotations.

func XRot(a scad.Angle) Ext {
	return newExt("XRot", "(a=0) { rotate([a, 0, 0]) children(); }", arg("a", a))
}

func YRot(a scad.Angle) Ext {
	return newExt("YRot", "(a=0) { rotate([0, a, 0]) children(); }", arg("a", a))
}

func ZRot(a scad.Angle) Ext {
	return newExt("ZRot", "(a=0) { rotate([0, 0, a]) children(); }", arg("a", a))
}

const aroundBody = "(a=0, cp=undef) { if (!is_undef(cp)) { translate(cp) rotate(%[1]s) translate(-cp) children(); } else { rotate(%[1]s) children(); } }"

// XRotAround rotates about the x axis through cp.
func XRotAround(a scad.Angle, cp scad.Length3) Ext {
	return newExt("XRot", fmt.Sprintf(aroundBody, "[a, 0, 0]"), arg("a", a), arg("cp", cp))
}

func YRotAround(a scad.Angle, cp scad.Length3) Ext {
	return newExt("YRot", fmt.Sprintf(aroundBody, "[0, a, 0]"), arg("a", a), arg("cp", cp))
}

func ZRotAround(a scad.Angle, cp scad.Length3) Ext {
	return newExt("ZRot", fmt.Sprintf(aroundBody, "[0, 0, a]"), arg("a", a), arg("cp", cp))
}

// Single axis scales.

func XScale(x scad.Scalar) Ext {
	return newExt("XScale", "(x=undef) { scale([x, 1, 1]) children(); }", arg("x", x))
}

func YScale(y scad.Scalar) Ext {
	return newExt("YScale", "(y=undef) { scale([1, y, 1]) children(); }", arg("y", y))
}

func ZScale(z scad.Scalar) Ext {
	return newExt("ZScale", "(z=undef) { scale([1, 1, z]) children(); }", arg("z", z))
}

// Mirrors across the plane normal to one axis.

func XFlip() Ext { return newExt("XFlip", "() { mirror([1, 0, 0]) children(); }") }
func YFlip() Ext { return newExt("YFlip", "() { mirror([0, 1, 0]) children(); }") }
func ZFlip() Ext { return newExt("ZFlip", "() { mirror([0, 0, 1]) children(); }") }

// Preview modifiers.

// Debug highlights the object in preview.
func Debug() Ext { return newExt("Debug", "() { #children(); }") }

// Background shows the object transparently in preview and drops it from
// the render.
func Background() Ext { return newExt("Background", "() { %children(); }") }

// Root renders only this object.
func Root() Ext { return newExt("Root", "() { !children(); }") }

// Disable removes the object.
func Disable() Ext { return newExt("Disable", "() { *children(); }") }

// PreviewOnly keeps the object in preview and drops it from the render.
func PreviewOnly() Ext { return newExt("PreviewOnly", "() { if($preview) { children(); } }") }

// Fragment sets one of the $fa, $fn, $fs special variables for its
// children.
type Fragment struct {
	Ext
}

// Preview sets the value used in preview mode instead.
func (fr Fragment) Preview(p float64) Fragment {
	return Fragment{Ext: fr.set("p", scad.Scalar(p))}
}

// FragmentAngle sets $fa, the minimum angle of a fragment.
func FragmentAngle(v scad.Angle) Fragment {
	return Fragment{newExt("FragmentAngle",
		"(v=12, p=undef) { $fa = ($preview && !is_undef(p)) ? p : v; children(); }",
		arg("v", v), arg("p", nil))}
}

// FragmentNumber sets $fn, the number of fragments in a full circle.
func FragmentNumber(v scad.Resolution) Fragment {
	return Fragment{newExt("FragmentNumber",
		"(v=0, p=undef) { $fn = ($preview && !is_undef(p)) ? p : v; children(); }",
		arg("v", v), arg("p", nil))}
}

// FragmentSize sets $fs, the minimum size of a fragment.
func FragmentSize(v scad.Length) Fragment {
	return Fragment{newExt("FragmentSize",
		"(p=undef, v=2) { $fs = ($preview && !is_undef(p)) ? p : v; children(); }",
		arg("p", nil), arg("v", v))}
}
