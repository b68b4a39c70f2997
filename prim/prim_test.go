package prim

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-solid/scad"
)

func TestCube(t *testing.T) {
	want := "module _v4() { cube(size=[1, 2, 3]); }\n\n_v4();"
	if diff := cmp.Diff(want, NewCube(scad.Length3{1, 2, 3}).String()); diff != "" {
		t.Errorf("render (-want +got):\n%s", diff)
	}
}

func TestCalls(t *testing.T) {
	tests := []struct {
		name string
		v    scad.Scad
		want string
	}{
		{"centered cube", NewCube(scad.Splat3(2)).Center(true), "cube(center=true, size=[2, 2, 2])"},
		{"sphere", NewSphere(3).Resolution(32), "sphere($fn=32, r=3)"},
		{"cylinder", NewCylinder(10, 2).Center(true), "cylinder(center=true, h=10, r=2)"},
		{"cone", NewCone(5, 2, 1), "cylinder(h=5, r1=2, r2=1)"},
		{"square", NewSquare(scad.Length2{2, 3}), "square(size=[2, 3])"},
		{"pentagon", Pentagon(2), "circle($fn=5, r=2)"},
		{"hexagon", Hexagon(2), "circle($fn=6, r=2)"},
		{"polygon", NewPolygon(scad.Points2{{0, 0}, {1, 0}, {0, 1}}), "polygon(points=[[0, 0], [1, 0], [0, 1]])"},
		{"polygon paths", NewPolygon(scad.Points2{{0, 0}, {1, 0}, {0, 1}}).Paths(scad.Paths{{0, 1, 2}}),
			"polygon(paths=[[0, 1, 2]], points=[[0, 0], [1, 0], [0, 1]])"},
		{"polyhedron", NewPolyhedron(scad.Points3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, scad.Paths{{0, 1, 2}, {0, 1, 3}, {1, 2, 3}, {0, 2, 3}}),
			"polyhedron(faces=[[0, 1, 2], [0, 1, 3], [1, 2, 3], [0, 2, 3]], points=[[0, 0, 0], [1, 0, 0], [0, 1, 0], [0, 0, 1]])"},
		{"text", NewText("hi").Size(5).Align("center", ""), `text(halign="center", size=5, text="hi")`},
		{"translate", NewTranslate(scad.Length3{1, 0, 0}), "translate(v=[1, 0, 0]) children()"},
		{"rotate", NewRotate(scad.Angle3{0, 0, 90}), "rotate(a=[0, 0, 90]) children()"},
		{"rotate about", NewRotateAbout(45, scad.Scalar3{0, 0, 1}), "rotate(a=45, v=[0, 0, 1]) children()"},
		{"scale", NewScale(scad.Scalar3{2, 2, 1}), "scale(v=[2, 2, 1]) children()"},
		{"resize", NewResize(scad.Length3{10, 0, 0}).Auto(true), "resize(auto=true, newsize=[10, 0, 0]) children()"},
		{"mirror", NewMirror(scad.Scalar3{1, 0, 0}), "mirror(v=[1, 0, 0]) children()"},
		{"color", NewColor("red").Alpha(0.5), `color(alpha=0.5, c="red") children()`},
		{"offset", NewOffsetDelta(1).Chamfer(true), "offset(chamfer=true, delta=1) children()"},
		{"linear extrude", NewLinearExtrude(10).Twist(90).Slices(20), "linear_extrude(height=10, slices=20, twist=90) children()"},
		{"rotate extrude", NewRotateExtrude().Angle(180), "rotate_extrude(angle=180) children()"},
		{"projection", NewProjection().Cut(true), "projection(cut=true) children()"},
		{"import", Import{path: "part.stl"}, `import("part.stl")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := scad.ToScad(tt.v)
			if !strings.Contains(out, "{ "+tt.want+"; }") {
				t.Errorf("missing %q in\n%s", tt.want, out)
			}
		})
	}
}

func TestNoArgs(t *testing.T) {
	tests := []struct {
		v    scad.Scad
		want string
	}{
		{NewRotateExtrude(), "rotate_extrude()"},
		{NewProjection(), "projection()"},
	}
	for _, tt := range tests {
		if got := scad.ToScad(tt.v); got != "\n"+tt.want+";" {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestExtOperator(t *testing.T) {
	obj := NewSphere(1).IntoObject().Then(Up(5))
	want := "module _v1() { sphere(r=1); }\n" +
		"module _v2 (z=undef) { translate([0, 0, z]) children(); }\n" +
		"module _v4() { _v2(z=5) children(); }\n" +
		"module _v5() { _v4() _v1(); }\n" +
		"\n" +
		"_v5();"
	if diff := cmp.Diff(want, obj.String()); diff != "" {
		t.Errorf("render (-want +got):\n%s", diff)
	}
}

func TestExtModuleShared(t *testing.T) {
	obj := scad.Union[scad.D3](
		NewCube(scad.Splat3(1)).IntoObject().Then(Up(1)),
		NewCube(scad.Splat3(1)).IntoObject().Then(Up(2)),
		NewSphere(1).IntoObject().Then(Down(2)),
	)
	out := obj.String()
	if n := strings.Count(out, "translate([0, 0, z])"); n != 1 {
		t.Errorf("up body printed %d times:\n%s", n, out)
	}
	if n := strings.Count(out, "translate([0, 0, -z])"); n != 1 {
		t.Errorf("down body printed %d times:\n%s", n, out)
	}
	if !strings.Contains(out, "(z=1) children()") || !strings.Contains(out, "(z=2) children()") {
		t.Errorf("missing call sites:\n%s", out)
	}
}

func TestExtBodies(t *testing.T) {
	tests := []struct {
		name string
		e    scad.Template
		body string
		call string
	}{
		{"right", Right(3), "(x=undef) { translate([x, 0, 0]) children(); }", "(x=3) children()"},
		{"back", Back(3), "(y=undef) { translate([0, -y, 0]) children(); }", "(y=3) children()"},
		{"y rot", YRot(90), "(a=0) { rotate([0, a, 0]) children(); }", "(a=90) children()"},
		{"z rot around", ZRotAround(45, scad.Length3{1, 1, 0}),
			"(a=0, cp=undef) { if (!is_undef(cp)) { translate(cp) rotate([0, 0, a]) translate(-cp) children(); } else { rotate([0, 0, a]) children(); } }",
			"(a=45, cp=[1, 1, 0]) children()"},
		{"x scale", XScale(2), "(x=undef) { scale([x, 1, 1]) children(); }", "(x=2) children()"},
		{"fragments", FragmentNumber(64).Preview(12),
			"(v=0, p=undef) { $fn = ($preview && !is_undef(p)) ? p : v; children(); }",
			"(v=64, p=12) children()"},
		{"fragment size", FragmentSize(0.5),
			"(p=undef, v=2) { $fs = ($preview && !is_undef(p)) ? p : v; children(); }",
			"(v=0.5) children()"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.e.String()
			if !strings.Contains(out, "module _v0 "+tt.body+"\n") {
				t.Errorf("missing body %q in\n%s", tt.body, out)
			}
			if !strings.Contains(out, "_v0"+tt.call) {
				t.Errorf("missing call %q in\n%s", tt.call, out)
			}
		})
	}
}

func TestArgumentlessExt(t *testing.T) {
	// No present arguments: the call stays inline.
	want := "module _v0 () { mirror([1, 0, 0]) children(); }\n\n_v0();"
	if diff := cmp.Diff(want, XFlip().String()); diff != "" {
		t.Errorf("render (-want +got):\n%s", diff)
	}
	obj := NewCube(scad.Splat3(1)).IntoObject().Then(Debug())
	if !strings.Contains(obj.String(), "() { #children(); }") {
		t.Errorf("debug modifier missing:\n%s", obj)
	}
}

func TestFragmentPreviewCopies(t *testing.T) {
	base := FragmentAngle(6)
	_ = base.Preview(30)
	if strings.Contains(base.String(), "p=30") {
		t.Errorf("Preview modified its receiver:\n%s", base)
	}
}

func TestSettersCopy(t *testing.T) {
	c := NewCube(scad.Splat3(1))
	centered := c.Center(true)
	if strings.Contains(c.String(), "center") {
		t.Errorf("Center modified its receiver")
	}
	if !strings.Contains(centered.String(), "center=true") {
		t.Errorf("Center not applied")
	}
}

func TestDimensionChanges(t *testing.T) {
	flat := NewSquare(scad.Length2{2, 3}).IntoObject()
	solid := scad.Apply[scad.D2, scad.D3](flat, NewLinearExtrude(10))
	want := "module _v3() { square(size=[2, 3]); }\n" +
		"module _v5() { linear_extrude(height=10) children(); }\n" +
		"module _v6() { _v5() _v3(); }\n" +
		"\n" +
		"_v6();"
	if diff := cmp.Diff(want, solid.String()); diff != "" {
		t.Errorf("render (-want +got):\n%s", diff)
	}
	back := scad.Apply[scad.D3, scad.D2](solid, NewProjection().Cut(true))
	if back.Dims() != 2 {
		t.Errorf("projection dims %d", back.Dims())
	}
	turned := scad.Apply[scad.D2, scad.D3](NewCircle(1).IntoObject().Then(Right(5)), NewRotateExtrude())
	if turned.Dims() != 3 || !strings.Contains(turned.String(), "rotate_extrude() _v") {
		t.Errorf("rotate extrude:\n%s", turned)
	}
	grown := flat.Pipe(NewOffset(-0.5))
	if !strings.Contains(grown.String(), "offset(r=-0.5) children()") {
		t.Errorf("offset:\n%s", grown)
	}
}

func TestScrewDirectives(t *testing.T) {
	screw := NewScrew(3, 10).Head(5.5, 3)
	obj := screw.IntoObject().Union(screw.Countersunk(true))
	out := obj.String()
	prefix := "include <BOSL/constants.scad>;\nuse <BOSL/metric_screws.scad>;\n"
	if !strings.HasPrefix(out, prefix) {
		t.Errorf("directives missing or repeated:\n%s", out)
	}
	if strings.Count(out, "include") != 1 {
		t.Errorf("include repeated:\n%s", out)
	}
	if !strings.Contains(out, "screw(headlen=3, headsize=5.5, screwlen=10, screwsize=3)") {
		t.Errorf("screw call:\n%s", out)
	}
}

func TestImports(t *testing.T) {
	want := "module _v0() { import(\"a.stl\"); }\n\n_v0();"
	if diff := cmp.Diff(want, ImportSTL("a.stl").String()); diff != "" {
		t.Errorf("render (-want +got):\n%s", diff)
	}
	if ImportSVG("a.svg").Dims() != 2 || ImportAMF("a.amf").Dims() != 3 {
		t.Errorf("import dims")
	}
}

func TestShapes(t *testing.T) {
	tri := RightTriangle(3, 4)
	out := tri.String()
	for _, frag := range []string{
		"square(size=[3, 4])",
		"square(size=[8, 8])",
		"mirror(v=[1, 0, 0]) children()",
		"(x=1.5) children()",
		"(y=2) children()",
	} {
		if !strings.Contains(out, frag) {
			t.Errorf("missing %q in\n%s", frag, out)
		}
	}
	eq := Equilateral(3).String()
	if !strings.Contains(eq, "circle($fn=3, r=1.73") || !strings.Contains(eq, "(a=-30) children()") {
		t.Errorf("equilateral:\n%s", eq)
	}
}

func TestGoString(t *testing.T) {
	tests := []struct {
		v    interface{ GoString() string }
		want string
	}{
		{NewCube(scad.Length3{1, 2, 3}), "Cube { size: [1 2 3] }"},
		{NewCube(scad.Splat3(1)).Center(true), "Cube { center: true, size: [1 1 1] }"},
		{NewSphere(2), "Sphere { r: 2 }"},
		{NewProjection(), "Projection"},
		{Up(5), "Up { z: 5 }"},
		{XFlip(), "XFlip"},
		{NewTranslate(scad.Length3{1, 2, 3}), "Translate { v: [1 2 3] }"},
	}
	for _, tt := range tests {
		if got := tt.v.GoString(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
	obj := NewCube(scad.Splat3(1)).IntoObject().Then(Up(1))
	if got, want := obj.GoString(), "Cube { size: [1 1 1] }.Then(Up { z: 1 })"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestConstructorsCopyInput(t *testing.T) {
	pts := scad.Points2{{0, 0}, {1, 0}, {0, 1}}
	paths := scad.Paths{{0, 1, 2}}
	poly := NewPolygon(pts).Paths(paths)
	before := poly.String()
	pts[0] = scad.Length2{5, 5}
	paths[0][0] = 2
	if got := poly.String(); got != before {
		t.Errorf("polygon changed with its inputs:\n%s\n---\n%s", before, got)
	}

	pts3 := scad.Points3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	faces := scad.Paths{{0, 1, 2}, {0, 1, 3}, {1, 2, 3}, {0, 2, 3}}
	solid := NewPolyhedron(pts3, faces)
	before = solid.String()
	pts3[3][2] = 9
	faces[1][2] = 0
	if got := solid.String(); got != before {
		t.Errorf("polyhedron changed with its inputs:\n%s\n---\n%s", before, got)
	}
}
