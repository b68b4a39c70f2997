package prim

import (
	"slices"

	"github.com/signadot/go-solid/scad"
)

// Square is square(size, center).
type Square struct {
	center *scad.Bool
	size   *scad.Length2
}

func NewSquare(size scad.Length2) Square {
	return Square{size: &size}
}

func (s Square) Center(v bool) Square {
	s.center = ref(scad.Bool(v))
	return s
}

func (s Square) Assign(f *scad.Formatter) scad.Assignment {
	return f.Call("square", []scad.Arg{
		scad.Opt(f, "center", s.center),
		scad.Opt(f, "size", s.size),
	}, false)
}

func (s Square) String() string { return render(s) }

func (s Square) GoString() string {
	var fs fields
	fs = field(fs, "center", s.center)
	fs = field(fs, "size", s.size)
	return fs.describe("Square")
}

func (s Square) IntoObject() scad.Object[scad.D2] { return scad.NewObject[scad.D2](s) }

// Circle is circle(r) with optional fragment controls.
type Circle struct {
	fa *scad.Angle
	fn *scad.Resolution
	fs *scad.Length
	r  *scad.Length
}

func NewCircle(r scad.Length) Circle {
	return Circle{r: &r}
}

// Resolution sets $fn. A low count gives a regular polygon.
func (c Circle) Resolution(v scad.Resolution) Circle {
	c.fn = &v
	return c
}

func (c Circle) MinAngle(v scad.Angle) Circle {
	c.fa = &v
	return c
}

func (c Circle) MinSize(v scad.Length) Circle {
	c.fs = &v
	return c
}

func (c Circle) Assign(f *scad.Formatter) scad.Assignment {
	return f.Call("circle", []scad.Arg{
		scad.Opt(f, "$fa", c.fa),
		scad.Opt(f, "$fn", c.fn),
		scad.Opt(f, "$fs", c.fs),
		scad.Opt(f, "r", c.r),
	}, false)
}

func (c Circle) String() string { return render(c) }

func (c Circle) GoString() string {
	var fs fields
	fs = field(fs, "fa", c.fa)
	fs = field(fs, "fn", c.fn)
	fs = field(fs, "fs", c.fs)
	fs = field(fs, "r", c.r)
	return fs.describe("Circle")
}

func (c Circle) IntoObject() scad.Object[scad.D2] { return scad.NewObject[scad.D2](c) }

// Pentagon, Hexagon and Octagon are regular polygons with circumradius r.
func Pentagon(r scad.Length) Circle { return NewCircle(r).Resolution(5) }
func Hexagon(r scad.Length) Circle  { return NewCircle(r).Resolution(6) }
func Octagon(r scad.Length) Circle  { return NewCircle(r).Resolution(8) }

// Polygon is polygon(points, paths).
type Polygon struct {
	convexity *scad.Scalar
	paths     *scad.Paths
	points    scad.Points2
}

func NewPolygon(points scad.Points2) Polygon {
	return Polygon{points: slices.Clone(points)}
}

// Paths selects the outline and holes by point index.
func (p Polygon) Paths(v scad.Paths) Polygon {
	p.paths = ref(clonePaths(v))
	return p
}

func (p Polygon) Convexity(v int) Polygon {
	p.convexity = ref(scad.Scalar(v))
	return p
}

func (p Polygon) Assign(f *scad.Formatter) scad.Assignment {
	return f.Call("polygon", []scad.Arg{
		scad.Opt(f, "convexity", p.convexity),
		scad.Opt(f, "paths", p.paths),
		scad.Req(f, "points", p.points),
	}, false)
}

func (p Polygon) String() string { return render(p) }

func (p Polygon) GoString() string {
	var fs fields
	fs = field(fs, "convexity", p.convexity)
	fs = field(fs, "paths", p.paths)
	fs = field(fs, "points", &p.points)
	return fs.describe("Polygon")
}

func (p Polygon) IntoObject() scad.Object[scad.D2] { return scad.NewObject[scad.D2](p) }

// Text is text(text) rendered as outlines.
type Text struct {
	font    *scad.Str
	halign  *scad.Str
	size    *scad.Length
	spacing *scad.Scalar
	text    scad.Str
	valign  *scad.Str
}

func NewText(text string) Text {
	return Text{text: scad.Str(text)}
}

func (t Text) Font(v string) Text {
	t.font = ref(scad.Str(v))
	return t
}

func (t Text) Size(v scad.Length) Text {
	t.size = &v
	return t
}

func (t Text) Spacing(v scad.Scalar) Text {
	t.spacing = &v
	return t
}

// Align sets horizontal ("left", "center", "right") and vertical ("top",
// "center", "baseline", "bottom") alignment. Empty strings leave the
// default.
func (t Text) Align(h, v string) Text {
	if h != "" {
		t.halign = ref(scad.Str(h))
	}
	if v != "" {
		t.valign = ref(scad.Str(v))
	}
	return t
}

func (t Text) Assign(f *scad.Formatter) scad.Assignment {
	return f.Call("text", []scad.Arg{
		scad.Opt(f, "font", t.font),
		scad.Opt(f, "halign", t.halign),
		scad.Opt(f, "size", t.size),
		scad.Opt(f, "spacing", t.spacing),
		scad.Req(f, "text", t.text),
		scad.Opt(f, "valign", t.valign),
	}, false)
}

func (t Text) String() string { return render(t) }

func (t Text) GoString() string {
	var fs fields
	fs = field(fs, "font", t.font)
	fs = field(fs, "halign", t.halign)
	fs = field(fs, "size", t.size)
	fs = field(fs, "spacing", t.spacing)
	fs = field(fs, "text", &t.text)
	fs = field(fs, "valign", t.valign)
	return fs.describe("Text")
}

func (t Text) IntoObject() scad.Object[scad.D2] { return scad.NewObject[scad.D2](t) }
