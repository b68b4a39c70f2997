package prim

import (
	"fmt"

	"github.com/signadot/go-solid/scad"
)

// Transforms work in either dimension and are applied with Object.Then.

// Translate is translate(v).
type Translate struct {
	v scad.Length3
}

func NewTranslate(v scad.Length3) Translate {
	return Translate{v: v}
}

func (t Translate) Assign(f *scad.Formatter) scad.Assignment {
	return f.Call("translate", []scad.Arg{scad.Req(f, "v", t.v)}, true)
}

func (t Translate) String() string     { return render(t) }
func (t Translate) GoString() string   { return fmt.Sprintf("Translate { v: %v }", t.v) }
func (t Translate) AppliesToChildren() {}

// Rotate is rotate(a) with per-axis angles, or rotate(a, v) for a single
// angle about an arbitrary axis.
type Rotate struct {
	a scad.Scad
	v *scad.Scalar3
}

func NewRotate(a scad.Angle3) Rotate {
	return Rotate{a: a}
}

// NewRotateAbout rotates by a degrees about axis v.
func NewRotateAbout(a scad.Angle, v scad.Scalar3) Rotate {
	return Rotate{a: a, v: &v}
}

func (r Rotate) Assign(f *scad.Formatter) scad.Assignment {
	return f.Call("rotate", []scad.Arg{
		scad.Req(f, "a", r.a),
		scad.Opt(f, "v", r.v),
	}, true)
}

func (r Rotate) String() string { return render(r) }

func (r Rotate) GoString() string {
	fs := fields{fmt.Sprintf("a: %v", r.a)}
	fs = field(fs, "v", r.v)
	return fs.describe("Rotate")
}

func (r Rotate) AppliesToChildren() {}

// Scale is scale(v).
type Scale struct {
	v scad.Scalar3
}

func NewScale(v scad.Scalar3) Scale {
	return Scale{v: v}
}

func (s Scale) Assign(f *scad.Formatter) scad.Assignment {
	return f.Call("scale", []scad.Arg{scad.Req(f, "v", s.v)}, true)
}

func (s Scale) String() string     { return render(s) }
func (s Scale) GoString() string   { return fmt.Sprintf("Scale { v: %v }", s.v) }
func (s Scale) AppliesToChildren() {}

// Resize is resize(newsize). A zero component keeps that axis unless auto
// is set for it.
type Resize struct {
	auto    *scad.Bool
	newsize scad.Length3
}

func NewResize(v scad.Length3) Resize {
	return Resize{newsize: v}
}

// Auto scales zero components proportionally.
func (r Resize) Auto(v bool) Resize {
	r.auto = ref(scad.Bool(v))
	return r
}

func (r Resize) Assign(f *scad.Formatter) scad.Assignment {
	return f.Call("resize", []scad.Arg{
		scad.Opt(f, "auto", r.auto),
		scad.Req(f, "newsize", r.newsize),
	}, true)
}

func (r Resize) String() string { return render(r) }

func (r Resize) GoString() string {
	var fs fields
	fs = field(fs, "auto", r.auto)
	fs = field(fs, "newsize", &r.newsize)
	return fs.describe("Resize")
}

func (r Resize) AppliesToChildren() {}

// Mirror is mirror(v), reflecting across the plane through the origin with
// normal v.
type Mirror struct {
	v scad.Scalar3
}

func NewMirror(v scad.Scalar3) Mirror {
	return Mirror{v: v}
}

func (m Mirror) Assign(f *scad.Formatter) scad.Assignment {
	return f.Call("mirror", []scad.Arg{scad.Req(f, "v", m.v)}, true)
}

func (m Mirror) String() string     { return render(m) }
func (m Mirror) GoString() string   { return fmt.Sprintf("Mirror { v: %v }", m.v) }
func (m Mirror) AppliesToChildren() {}

// Color is color(c, alpha).
type Color struct {
	alpha *scad.Scalar
	c     scad.Str
}

// NewColor takes a color name such as "red" or a hex value such as
// "#ff8800".
func NewColor(c string) Color {
	return Color{c: scad.Str(c)}
}

func (c Color) Alpha(v scad.Scalar) Color {
	c.alpha = &v
	return c
}

func (c Color) Assign(f *scad.Formatter) scad.Assignment {
	return f.Call("color", []scad.Arg{
		scad.Opt(f, "alpha", c.alpha),
		scad.Req(f, "c", c.c),
	}, true)
}

func (c Color) String() string { return render(c) }

func (c Color) GoString() string {
	var fs fields
	fs = field(fs, "alpha", c.alpha)
	fs = field(fs, "c", &c.c)
	return fs.describe("Color")
}

func (c Color) AppliesToChildren() {}

// Offset is offset(r) or offset(delta) on a planar object.
type Offset struct {
	chamfer *scad.Bool
	delta   *scad.Length
	r       *scad.Length
}

// NewOffset offsets by a rounded radius r. Negative values shrink.
func NewOffset(r scad.Length) Offset {
	return Offset{r: &r}
}

// NewOffsetDelta offsets by delta keeping sharp corners.
func NewOffsetDelta(delta scad.Length) Offset {
	return Offset{delta: &delta}
}

// Chamfer cuts corners off a delta offset.
func (o Offset) Chamfer(v bool) Offset {
	o.chamfer = ref(scad.Bool(v))
	return o
}

func (o Offset) Assign(f *scad.Formatter) scad.Assignment {
	return f.Call("offset", []scad.Arg{
		scad.Opt(f, "chamfer", o.chamfer),
		scad.Opt(f, "delta", o.delta),
		scad.Opt(f, "r", o.r),
	}, true)
}

func (o Offset) String() string { return render(o) }

func (o Offset) GoString() string {
	var fs fields
	fs = field(fs, "chamfer", o.chamfer)
	fs = field(fs, "delta", o.delta)
	fs = field(fs, "r", o.r)
	return fs.describe("Offset")
}

func (o Offset) Apply(child scad.Object[scad.D2]) scad.Object[scad.D2] {
	return scad.Wrap(scad.NewObject[scad.D2](o), child)
}
