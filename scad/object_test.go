package scad

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDifferenceScenario(t *testing.T) {
	obj := cube(10, 20, 30).IntoObject().Difference(sphere(10).IntoObject().Then(translate(0, 0, 5)))
	want := "module _v4() { cube(size=[10, 20, 30]); }\n" +
		"module _v5() { sphere(r=10); }\n" +
		"module _v9() { translate(v=[0, 0, 5]) children(); }\n" +
		"module _v10() { _v9() _v5(); }\n" +
		"module _v11() { difference() { _v4(); _v10(); }; }\n" +
		"\n" +
		"_v11();"
	if diff := cmp.Diff(want, obj.String()); diff != "" {
		t.Errorf("render (-want +got):\n%s", diff)
	}
}

func TestDifferenceScenarioHoisted(t *testing.T) {
	obj := cube(10, 20, 30).IntoObject().Difference(sphere(10).IntoObject().Then(translate(0, 0, 5)))
	want := "function _v0() = 10;\n" +
		"function _v1() = 20;\n" +
		"function _v2() = 30;\n" +
		"function _v3() = [_v0(), _v1(), _v2()];\n" +
		"module _v4() { cube(size=_v3()); }\n" +
		"module _v5() { sphere(r=_v0()); }\n" +
		"function _v6() = 0;\n" +
		"function _v7() = 5;\n" +
		"function _v8() = [_v6(), _v6(), _v7()];\n" +
		"module _v9() { translate(v=_v8()) children(); }\n" +
		"module _v10() { _v9() _v5(); }\n" +
		"module _v11() { difference() { _v4(); _v10(); }; }\n" +
		"\n" +
		"_v11();"
	if diff := cmp.Diff(want, ToScad(obj, HoistValues(true))); diff != "" {
		t.Errorf("render (-want +got):\n%s", diff)
	}
}

func TestDeterminism(t *testing.T) {
	obj := Union[D3](
		cube(1, 2, 3),
		sphere(4).IntoObject().Then(up(5)),
		cube(1, 2, 3).IntoObject().Then(translate(1, 1, 1)),
	)
	first := obj.String()
	for range 20 {
		if got := obj.String(); got != first {
			t.Fatalf("render changed:\n%s\n---\n%s", first, got)
		}
	}
}

func TestDedupIndependentSubtrees(t *testing.T) {
	a := cube(1, 2, 3).IntoObject().Then(translate(0, 0, 5))
	b := cube(1, 2, 3).IntoObject().Then(translate(0, 0, 5))
	out := a.Union(b).String()
	for _, frag := range []string{"cube(size=[1, 2, 3])", "translate(v=[0, 0, 5]) children()"} {
		if n := strings.Count(out, frag); n != 1 {
			t.Errorf("%q defined %d times in\n%s", frag, n, out)
		}
	}
	if !strings.Contains(out, "union() { _v9(); _v9(); }") {
		t.Errorf("both union members should reference one handle:\n%s", out)
	}
}

func TestReferenceSharing(t *testing.T) {
	shared := sphere(3).IntoObject().Then(translate(1, 2, 3))
	clone := shared
	obj := cube(5, 5, 5).IntoObject().Union(shared).Difference(clone.Then(up(1)))
	out := obj.String()
	if n := strings.Count(out, "sphere(r=3)"); n != 1 {
		t.Errorf("sphere defined %d times:\n%s", n, out)
	}
	if n := strings.Count(out, "translate(v=[1, 2, 3])"); n != 1 {
		t.Errorf("shared translate defined %d times:\n%s", n, out)
	}
}

func TestTemplateSharedAcrossChildren(t *testing.T) {
	lift := up(5)
	obj := Union[D3](
		cube(1, 1, 1).IntoObject().Then(lift),
		sphere(2).IntoObject().Then(lift),
		cube(3, 1, 1).IntoObject().Then(lift),
	)
	out := obj.String()
	if n := strings.Count(out, "translate([0, 0, z]) children();"); n != 1 {
		t.Errorf("module template printed %d times:\n%s", n, out)
	}
	if n := strings.Count(out, "(z=5) children()"); n != 1 {
		t.Errorf("template call printed %d times:\n%s", n, out)
	}
	f := NewFormatter()
	obj.Assign(f)
	calls := 0
	for _, def := range f.definitions() {
		if strings.HasSuffix(def.text, ")") && strings.Contains(def.text, "() _v") {
			calls++
		}
	}
	if calls != 3 {
		t.Errorf("got %d call sites, want 3", calls)
	}
}

func TestFirstRegistrationOrder(t *testing.T) {
	obj := sphere(1).IntoObject().Union(cube(2, 2, 2))
	out := obj.String()
	s, c := strings.Index(out, "sphere("), strings.Index(out, "cube(")
	if s < 0 || c < 0 || s > c {
		t.Errorf("sphere should be defined before cube:\n%s", out)
	}
	obj = cube(2, 2, 2).IntoObject().Union(sphere(1))
	out = obj.String()
	s, c = strings.Index(out, "sphere("), strings.Index(out, "cube(")
	if s < c {
		t.Errorf("cube should be defined before sphere:\n%s", out)
	}
}

func TestOmissionChangesKey(t *testing.T) {
	plain := leaf{name: "cylinder", r: ptr(Length(2))}
	sized := leaf{name: "cylinder", r: ptr(Length(2)), size: &Length3{1, 1, 1}}
	out := plain.IntoObject().Union(sized).String()
	if !strings.Contains(out, "cylinder(r=2)") {
		t.Errorf("missing plain call:\n%s", out)
	}
	if !strings.Contains(out, "cylinder(size=[1, 1, 1], r=2)") {
		t.Errorf("missing sized call:\n%s", out)
	}
	if strings.Contains(plain.String(), "size") {
		t.Errorf("absent argument rendered: %s", plain)
	}
}

func TestNoArgInline(t *testing.T) {
	obj := bare("cube").IntoObject().Then(translate(1, 0, 0)).
		Union(bare("cube").IntoObject().Then(translate(2, 0, 0)))
	f := NewFormatter()
	obj.Assign(f)
	for _, def := range f.definitions() {
		if def.text == "cube()" {
			t.Errorf("no-argument call registered as %s", def.a.Name())
		}
	}
	single := NewFormatter()
	bare("cube").Assign(single)
	if single.Len() != 0 {
		t.Errorf("no-argument call registered %d fragments", single.Len())
	}
	if got := bare("cube").String(); got != "\ncube();" {
		t.Errorf("got %q", got)
	}
}

func TestExtrudeChangesDimension(t *testing.T) {
	flat := NewObject[D2](bare("circle"))
	solid := Apply[D2, D3](flat, extrude{height: 4})
	if solid.Dims() != 3 || flat.Dims() != 2 {
		t.Fatalf("dims %d -> %d", flat.Dims(), solid.Dims())
	}
	want := "module _v1() { linear_extrude(height=4) children(); }\n" +
		"module _v2() { _v1() circle(); }\n" +
		"\n" +
		"_v2();"
	if diff := cmp.Diff(want, solid.String()); diff != "" {
		t.Errorf("render (-want +got):\n%s", diff)
	}
}

func TestNewObjectChecksDims(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic wrapping 2D object as 3D")
		}
	}()
	NewObject[D3](NewObject[D2](bare("circle")))
}

func TestNewObjectNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	NewObject[D3](nil)
}

func TestConcurrentRender(t *testing.T) {
	obj := Difference[D3](cube(4, 4, 4), sphere(2), sphere(3).IntoObject().Then(up(1)))
	want := obj.String()
	var wg sync.WaitGroup
	got := make([]string, 8)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = obj.String()
		}()
	}
	wg.Wait()
	for i, g := range got {
		if g != want {
			t.Errorf("render %d differs", i)
		}
	}
}

func TestGoString(t *testing.T) {
	obj := cube(1, 2, 3).IntoObject().Then(translate(0, 0, 1))
	got := obj.GoString()
	if !strings.Contains(got, "translate(") || !strings.Contains(got, ".Then(") {
		t.Errorf("GoString = %q", got)
	}
	var zero Object[D3]
	if !zero.IsZero() || zero.String() != "<nil>" {
		t.Errorf("zero object %q", zero.String())
	}
}
