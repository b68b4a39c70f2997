package prim

import (
	"slices"

	"github.com/signadot/go-solid/scad"
)

// Cube is cube(size, center).
type Cube struct {
	center *scad.Bool
	size   *scad.Length3
}

func NewCube(size scad.Length3) Cube {
	return Cube{size: &size}
}

// Center places the cube's center at the origin instead of its first corner.
func (c Cube) Center(v bool) Cube {
	c.center = ref(scad.Bool(v))
	return c
}

func (c Cube) Size(v scad.Length3) Cube {
	c.size = &v
	return c
}

func (c Cube) Assign(f *scad.Formatter) scad.Assignment {
	return f.Call("cube", []scad.Arg{
		scad.Opt(f, "center", c.center),
		scad.Opt(f, "size", c.size),
	}, false)
}

func (c Cube) String() string { return render(c) }

func (c Cube) GoString() string {
	var fs fields
	fs = field(fs, "center", c.center)
	fs = field(fs, "size", c.size)
	return fs.describe("Cube")
}

func (c Cube) IntoObject() scad.Object[scad.D3] { return scad.NewObject[scad.D3](c) }

// Sphere is sphere(r) with optional fragment controls.
type Sphere struct {
	fa *scad.Angle
	fn *scad.Resolution
	fs *scad.Length
	r  *scad.Length
}

func NewSphere(r scad.Length) Sphere {
	return Sphere{r: &r}
}

func (s Sphere) Radius(v scad.Length) Sphere {
	s.r = &v
	return s
}

// Resolution sets $fn.
func (s Sphere) Resolution(v scad.Resolution) Sphere {
	s.fn = &v
	return s
}

// MinAngle sets $fa.
func (s Sphere) MinAngle(v scad.Angle) Sphere {
	s.fa = &v
	return s
}

// MinSize sets $fs.
func (s Sphere) MinSize(v scad.Length) Sphere {
	s.fs = &v
	return s
}

func (s Sphere) Assign(f *scad.Formatter) scad.Assignment {
	return f.Call("sphere", []scad.Arg{
		scad.Opt(f, "$fa", s.fa),
		scad.Opt(f, "$fn", s.fn),
		scad.Opt(f, "$fs", s.fs),
		scad.Opt(f, "r", s.r),
	}, false)
}

func (s Sphere) String() string { return render(s) }

func (s Sphere) GoString() string {
	var fs fields
	fs = field(fs, "fa", s.fa)
	fs = field(fs, "fn", s.fn)
	fs = field(fs, "fs", s.fs)
	fs = field(fs, "r", s.r)
	return fs.describe("Sphere")
}

func (s Sphere) IntoObject() scad.Object[scad.D3] { return scad.NewObject[scad.D3](s) }

// Cylinder is cylinder(h, r) or, with distinct end radii, a cone.
type Cylinder struct {
	center *scad.Bool
	fn     *scad.Resolution
	h      *scad.Length
	r      *scad.Length
	r1     *scad.Length
	r2     *scad.Length
}

func NewCylinder(h, r scad.Length) Cylinder {
	return Cylinder{h: &h, r: &r}
}

// NewCone returns a cylinder with bottom radius r1 and top radius r2.
func NewCone(h, r1, r2 scad.Length) Cylinder {
	return Cylinder{h: &h, r1: &r1, r2: &r2}
}

func (c Cylinder) Center(v bool) Cylinder {
	c.center = ref(scad.Bool(v))
	return c
}

func (c Cylinder) Height(v scad.Length) Cylinder {
	c.h = &v
	return c
}

func (c Cylinder) Resolution(v scad.Resolution) Cylinder {
	c.fn = &v
	return c
}

func (c Cylinder) Assign(f *scad.Formatter) scad.Assignment {
	return f.Call("cylinder", []scad.Arg{
		scad.Opt(f, "$fn", c.fn),
		scad.Opt(f, "center", c.center),
		scad.Opt(f, "h", c.h),
		scad.Opt(f, "r", c.r),
		scad.Opt(f, "r1", c.r1),
		scad.Opt(f, "r2", c.r2),
	}, false)
}

func (c Cylinder) String() string { return render(c) }

func (c Cylinder) GoString() string {
	var fs fields
	fs = field(fs, "center", c.center)
	fs = field(fs, "fn", c.fn)
	fs = field(fs, "h", c.h)
	fs = field(fs, "r", c.r)
	fs = field(fs, "r1", c.r1)
	fs = field(fs, "r2", c.r2)
	return fs.describe("Cylinder")
}

func (c Cylinder) IntoObject() scad.Object[scad.D3] { return scad.NewObject[scad.D3](c) }

// Polyhedron is polyhedron(points, faces).
type Polyhedron struct {
	convexity *scad.Scalar
	faces     scad.Paths
	points    scad.Points3
}

func NewPolyhedron(points scad.Points3, faces scad.Paths) Polyhedron {
	return Polyhedron{points: slices.Clone(points), faces: clonePaths(faces)}
}

func (p Polyhedron) Convexity(v int) Polyhedron {
	p.convexity = ref(scad.Scalar(v))
	return p
}

func (p Polyhedron) Assign(f *scad.Formatter) scad.Assignment {
	return f.Call("polyhedron", []scad.Arg{
		scad.Opt(f, "convexity", p.convexity),
		scad.Req(f, "faces", p.faces),
		scad.Req(f, "points", p.points),
	}, false)
}

func (p Polyhedron) String() string { return render(p) }

func (p Polyhedron) GoString() string {
	var fs fields
	fs = field(fs, "convexity", p.convexity)
	fs = field(fs, "faces", &p.faces)
	fs = field(fs, "points", &p.points)
	return fs.describe("Polyhedron")
}

func (p Polyhedron) IntoObject() scad.Object[scad.D3] { return scad.NewObject[scad.D3](p) }
