package prim

import "github.com/signadot/go-solid/scad"

// LinearExtrude lifts a planar object along z.
type LinearExtrude struct {
	center    *scad.Bool
	convexity *scad.Scalar
	height    scad.Length
	scale     *scad.Scalar
	slices    *scad.Scalar
	twist     *scad.Angle
}

func NewLinearExtrude(height scad.Length) LinearExtrude {
	return LinearExtrude{height: height}
}

func (e LinearExtrude) Center(v bool) LinearExtrude {
	e.center = ref(scad.Bool(v))
	return e
}

func (e LinearExtrude) Convexity(v int) LinearExtrude {
	e.convexity = ref(scad.Scalar(v))
	return e
}

// Twist rotates the top by v degrees relative to the bottom.
func (e LinearExtrude) Twist(v scad.Angle) LinearExtrude {
	e.twist = &v
	return e
}

func (e LinearExtrude) Slices(v int) LinearExtrude {
	e.slices = ref(scad.Scalar(v))
	return e
}

// Scale scales the top outline by v.
func (e LinearExtrude) Scale(v scad.Scalar) LinearExtrude {
	e.scale = &v
	return e
}

func (e LinearExtrude) Assign(f *scad.Formatter) scad.Assignment {
	return f.Call("linear_extrude", []scad.Arg{
		scad.Opt(f, "center", e.center),
		scad.Opt(f, "convexity", e.convexity),
		scad.Req(f, "height", e.height),
		scad.Opt(f, "scale", e.scale),
		scad.Opt(f, "slices", e.slices),
		scad.Opt(f, "twist", e.twist),
	}, true)
}

func (e LinearExtrude) String() string { return render(e) }

func (e LinearExtrude) GoString() string {
	var fs fields
	fs = field(fs, "center", e.center)
	fs = field(fs, "convexity", e.convexity)
	fs = field(fs, "height", &e.height)
	fs = field(fs, "scale", e.scale)
	fs = field(fs, "slices", e.slices)
	fs = field(fs, "twist", e.twist)
	return fs.describe("LinearExtrude")
}

func (e LinearExtrude) Apply(child scad.Object[scad.D2]) scad.Object[scad.D3] {
	return scad.Wrap(scad.NewObject[scad.D3](e), child)
}

// RotateExtrude sweeps a planar object around the z axis.
type RotateExtrude struct {
	fa        *scad.Angle
	fn        *scad.Resolution
	fs        *scad.Length
	angle     *scad.Angle
	convexity *scad.Scalar
}

func NewRotateExtrude() RotateExtrude {
	return RotateExtrude{}
}

// Angle limits the sweep; the default is a full turn.
func (e RotateExtrude) Angle(v scad.Angle) RotateExtrude {
	e.angle = &v
	return e
}

func (e RotateExtrude) Convexity(v int) RotateExtrude {
	e.convexity = ref(scad.Scalar(v))
	return e
}

func (e RotateExtrude) Resolution(v scad.Resolution) RotateExtrude {
	e.fn = &v
	return e
}

func (e RotateExtrude) MinAngle(v scad.Angle) RotateExtrude {
	e.fa = &v
	return e
}

func (e RotateExtrude) MinSize(v scad.Length) RotateExtrude {
	e.fs = &v
	return e
}

func (e RotateExtrude) Assign(f *scad.Formatter) scad.Assignment {
	return f.Call("rotate_extrude", []scad.Arg{
		scad.Opt(f, "$fa", e.fa),
		scad.Opt(f, "$fn", e.fn),
		scad.Opt(f, "$fs", e.fs),
		scad.Opt(f, "angle", e.angle),
		scad.Opt(f, "convexity", e.convexity),
	}, true)
}

func (e RotateExtrude) String() string { return render(e) }

func (e RotateExtrude) GoString() string {
	var fs fields
	fs = field(fs, "fa", e.fa)
	fs = field(fs, "fn", e.fn)
	fs = field(fs, "fs", e.fs)
	fs = field(fs, "angle", e.angle)
	fs = field(fs, "convexity", e.convexity)
	return fs.describe("RotateExtrude")
}

func (e RotateExtrude) Apply(child scad.Object[scad.D2]) scad.Object[scad.D3] {
	return scad.Wrap(scad.NewObject[scad.D3](e), child)
}

// Projection flattens a solid onto the xy plane.
type Projection struct {
	cut *scad.Bool
}

func NewProjection() Projection {
	return Projection{}
}

// Cut keeps only the slice at z=0 instead of the full shadow.
func (p Projection) Cut(v bool) Projection {
	p.cut = ref(scad.Bool(v))
	return p
}

func (p Projection) Assign(f *scad.Formatter) scad.Assignment {
	return f.Call("projection", []scad.Arg{scad.Opt(f, "cut", p.cut)}, true)
}

func (p Projection) String() string { return render(p) }

func (p Projection) GoString() string {
	var fs fields
	fs = field(fs, "cut", p.cut)
	return fs.describe("Projection")
}

func (p Projection) Apply(child scad.Object[scad.D3]) scad.Object[scad.D2] {
	return scad.Wrap(scad.NewObject[scad.D2](p), child)
}
