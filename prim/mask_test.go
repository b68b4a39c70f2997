package prim

import (
	"strings"
	"testing"
)

func TestChamfer(t *testing.T) {
	out := Chamfer(5, 10).String()
	for _, frag := range []string{
		"square(size=[5, 10])",
		"rotate([0, 0, a]) children();",
		"square(center=true, size=[5, 0.01])",
		"square(center=true, size=[0.01, 10])",
		"if($preview) { children(); }",
	} {
		if !strings.Contains(out, frag) {
			t.Errorf("missing %q in\n%s", frag, out)
		}
	}
	if n := strings.Count(out, "(a=180) children()"); n != 1 {
		t.Errorf("half turn defined %d times:\n%s", n, out)
	}
}

func TestFaceCube(t *testing.T) {
	out := FaceCube(50, 100, Fillet(10)).String()
	for _, frag := range []string{
		"linear_extrude(center=true, height=100) children()",
		"linear_extrude(center=true, height=50) children()",
		"rotate(a=[90, 0, 90]) children()",
		"mirror(v=[1, 0, 0]) children()",
		"mirror(v=[0, 1, 0]) children()",
	} {
		if !strings.Contains(out, frag) {
			t.Errorf("missing %q in\n%s", frag, out)
		}
	}
	// the profile is shared by both edges
	if n := strings.Count(out, "circle(r=10)"); n != 1 {
		t.Errorf("profile circle defined %d times:\n%s", n, out)
	}
	// three joining the edges, two inside the profile
	if n := strings.Count(out, "union() {"); n != 5 {
		t.Errorf("got %d unions, want 5:\n%s", n, out)
	}
}

func TestMaskDimensions(t *testing.T) {
	if d := Fillet(1).Dims(); d != 2 {
		t.Errorf("fillet is %dD", d)
	}
	if d := Edge(1, Chamfer(1, 1)).Dims(); d != 3 {
		t.Errorf("edge is %dD", d)
	}
	if d := FaceCylinder(1, Fillet(1)).Dims(); d != 3 {
		t.Errorf("face cylinder is %dD", d)
	}
}
