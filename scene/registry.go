package scene

import (
	"maps"
	"slices"

	"github.com/signadot/go-solid/prim"
	"github.com/signadot/go-solid/scad"
)

// Kind classifies primitives by how they take input.
type Kind int

const (
	// KindShape is a leaf with a fixed dimension.
	KindShape Kind = iota
	// KindTransform applies to objects of either dimension.
	KindTransform
	// KindSet combines its children.
	KindSet
	// KindOperator takes input of one dimension and may produce another.
	KindOperator
)

func (k Kind) String() string {
	switch k {
	case KindShape:
		return "shape"
	case KindTransform:
		return "transform"
	case KindSet:
		return "set"
	case KindOperator:
		return "operator"
	default:
		return "unknown"
	}
}

// Primitive describes one scene key. In and Out are 2 or 3, or 0 where the
// dimension follows the input or there is no input.
type Primitive struct {
	Name    string
	Kind    Kind
	In, Out int
}

type entry struct {
	Primitive
	first string
	build func(a *args) any
}

var registry = map[string]entry{}

func register(p Primitive, first string, build func(a *args) any) {
	registry[p.Name] = entry{Primitive: p, first: first, build: build}
}

func shape(name string, dims int, first string, build func(a *args) any) {
	register(Primitive{Name: name, Kind: KindShape, Out: dims}, first, build)
}

func transform(name, first string, build func(a *args) any) {
	register(Primitive{Name: name, Kind: KindTransform}, first, build)
}

func operator(name string, in, out int, first string, build func(a *args) any) {
	register(Primitive{Name: name, Kind: KindOperator, In: in, Out: out}, first, build)
}

// Primitives lists the supported scene keys sorted by name.
func Primitives() []Primitive {
	res := make([]Primitive, 0, len(registry))
	for _, k := range slices.Sorted(maps.Keys(registry)) {
		res = append(res, registry[k].Primitive)
	}
	return res
}

func init() {
	for _, name := range []string{"union", "difference", "intersection", "hull", "minkowski"} {
		register(Primitive{Name: name, Kind: KindSet}, "", nil)
	}

	shape("cube", 3, "size", func(a *args) any {
		a.need("size")
		c := prim.NewCube(deref(a.length3("size")))
		if v := a.boolean("center"); v != nil {
			c = c.Center(*v)
		}
		return c
	})
	shape("sphere", 3, "r", func(a *args) any {
		a.need("r")
		s := prim.NewSphere(deref(a.length("r")))
		if v := a.number("fn"); v != nil {
			s = s.Resolution(scad.Resolution(*v))
		}
		return s
	})
	shape("cylinder", 3, "h", func(a *args) any {
		a.need("h")
		h := deref(a.length("h"))
		r, r1, r2 := a.length("r"), a.length("r1"), a.length("r2")
		var c prim.Cylinder
		switch {
		case r != nil && (r1 != nil || r2 != nil):
			a.fail("r", "cannot be combined with r1 or r2")
		case r1 != nil || r2 != nil:
			a.need("r1")
			a.need("r2")
			c = prim.NewCone(h, deref(r1), deref(r2))
		default:
			a.need("r")
			c = prim.NewCylinder(h, deref(r))
		}
		if v := a.boolean("center"); v != nil {
			c = c.Center(*v)
		}
		if v := a.number("fn"); v != nil {
			c = c.Resolution(scad.Resolution(*v))
		}
		return c
	})
	shape("polyhedron", 3, "", func(a *args) any {
		a.need("points")
		a.need("faces")
		p := prim.NewPolyhedron(a.points3("points"), a.paths("faces"))
		if v := a.number("convexity"); v != nil {
			p = p.Convexity(int(*v))
		}
		return p
	})
	shape("screw", 3, "", func(a *args) any {
		a.need("size")
		a.need("length")
		s := prim.NewScrew(deref(a.length("size")), deref(a.length("length")))
		hs, hl := a.length("head_size"), a.length("head_length")
		if hs != nil || hl != nil {
			a.need("head_size")
			a.need("head_length")
			s = s.Head(deref(hs), deref(hl))
		}
		if v := a.length("pitch"); v != nil {
			s = s.Pitch(*v)
		}
		if v := a.boolean("countersunk"); v != nil {
			s = s.Countersunk(*v)
		}
		return s
	})
	shape("import_stl", 3, "file", func(a *args) any {
		a.need("file")
		return prim.ImportSTL(deref(a.str("file")))
	})
	shape("import_amf", 3, "file", func(a *args) any {
		a.need("file")
		return prim.ImportAMF(deref(a.str("file")))
	})

	shape("square", 2, "size", func(a *args) any {
		a.need("size")
		s := prim.NewSquare(deref(a.length2("size")))
		if v := a.boolean("center"); v != nil {
			s = s.Center(*v)
		}
		return s
	})
	shape("circle", 2, "r", func(a *args) any {
		a.need("r")
		c := prim.NewCircle(deref(a.length("r")))
		if v := a.number("fn"); v != nil {
			c = c.Resolution(scad.Resolution(*v))
		}
		return c
	})
	for name, fn := range map[string]func(scad.Length) prim.Circle{
		"pentagon": prim.Pentagon,
		"hexagon":  prim.Hexagon,
		"octagon":  prim.Octagon,
	} {
		shape(name, 2, "r", func(a *args) any {
			a.need("r")
			return fn(deref(a.length("r")))
		})
	}
	shape("polygon", 2, "points", func(a *args) any {
		a.need("points")
		p := prim.NewPolygon(a.points2("points"))
		if a.m["paths"] != nil {
			p = p.Paths(a.paths("paths"))
		}
		if v := a.number("convexity"); v != nil {
			p = p.Convexity(int(*v))
		}
		return p
	})
	shape("text", 2, "text", func(a *args) any {
		a.need("text")
		t := prim.NewText(deref(a.str("text")))
		if v := a.length("size"); v != nil {
			t = t.Size(*v)
		}
		if v := a.str("font"); v != nil {
			t = t.Font(*v)
		}
		if v := a.scalar("spacing"); v != nil {
			t = t.Spacing(*v)
		}
		t = t.Align(deref(a.str("halign")), deref(a.str("valign")))
		return t
	})
	shape("import_svg", 2, "file", func(a *args) any {
		a.need("file")
		return prim.ImportSVG(deref(a.str("file")))
	})
	shape("right_triangle", 2, "", func(a *args) any {
		a.need("w")
		a.need("h")
		return prim.RightTriangle(deref(a.length("w")), deref(a.length("h")))
	})
	shape("equilateral", 2, "l", func(a *args) any {
		a.need("l")
		return prim.Equilateral(deref(a.length("l")))
	})
	shape("fillet", 2, "r", func(a *args) any {
		a.need("r")
		return prim.Fillet(deref(a.length("r")))
	})
	shape("chamfer", 2, "", func(a *args) any {
		a.need("w")
		a.need("h")
		return prim.Chamfer(deref(a.length("w")), deref(a.length("h")))
	})

	transform("translate", "v", func(a *args) any {
		a.need("v")
		return prim.NewTranslate(deref(a.length3("v")))
	})
	transform("rotate", "a", func(a *args) any {
		a.need("a")
		if _, ok := a.m["v"]; ok {
			return prim.NewRotateAbout(deref(a.angle("a")), deref(a.scalar3("v")))
		}
		if _, ok := toFloat(a.m["a"]); ok {
			return prim.NewRotate(scad.Angle3{0, 0, deref(a.angle("a"))})
		}
		xs := a.vector("a", 3, false)
		if xs == nil {
			return nil
		}
		return prim.NewRotate(scad.Angle3{scad.Angle(xs[0]), scad.Angle(xs[1]), scad.Angle(xs[2])})
	})
	transform("scale", "v", func(a *args) any {
		a.need("v")
		return prim.NewScale(deref(a.scalar3("v")))
	})
	transform("resize", "newsize", func(a *args) any {
		a.need("newsize")
		r := prim.NewResize(deref(a.length3("newsize")))
		if v := a.boolean("auto"); v != nil {
			r = r.Auto(*v)
		}
		return r
	})
	transform("mirror", "v", func(a *args) any {
		a.need("v")
		return prim.NewMirror(deref(a.scalar3("v")))
	})
	transform("color", "c", func(a *args) any {
		a.need("c")
		c := prim.NewColor(deref(a.str("c")))
		if v := a.scalar("alpha"); v != nil {
			c = c.Alpha(*v)
		}
		return c
	})

	for name, fn := range map[string]func(scad.Length) prim.Ext{
		"up":    prim.Up,
		"down":  prim.Down,
		"left":  prim.Left,
		"right": prim.Right,
		"fwd":   prim.Fwd,
		"back":  prim.Back,
	} {
		transform(name, "d", func(a *args) any {
			a.need("d")
			return fn(deref(a.length("d")))
		})
	}
	type rot struct {
		plain  func(scad.Angle) prim.Ext
		around func(scad.Angle, scad.Length3) prim.Ext
	}
	for name, fn := range map[string]rot{
		"xrot": {prim.XRot, prim.XRotAround},
		"yrot": {prim.YRot, prim.YRotAround},
		"zrot": {prim.ZRot, prim.ZRotAround},
	} {
		transform(name, "a", func(a *args) any {
			a.need("a")
			angle := deref(a.angle("a"))
			if cp := a.length3("cp"); cp != nil {
				return fn.around(angle, *cp)
			}
			return fn.plain(angle)
		})
	}
	for name, fn := range map[string]func(scad.Scalar) prim.Ext{
		"xscale": prim.XScale,
		"yscale": prim.YScale,
		"zscale": prim.ZScale,
	} {
		transform(name, "f", func(a *args) any {
			a.need("f")
			return fn(deref(a.scalar("f")))
		})
	}
	for name, fn := range map[string]func() prim.Ext{
		"xflip":        prim.XFlip,
		"yflip":        prim.YFlip,
		"zflip":        prim.ZFlip,
		"debug":        prim.Debug,
		"background":   prim.Background,
		"root":         prim.Root,
		"disable":      prim.Disable,
		"preview_only": prim.PreviewOnly,
	} {
		transform(name, "", func(a *args) any { return fn() })
	}
	transform("fragment_angle", "v", func(a *args) any {
		a.need("v")
		return preview(a, prim.FragmentAngle(deref(a.angle("v"))))
	})
	transform("fragment_number", "v", func(a *args) any {
		a.need("v")
		return preview(a, prim.FragmentNumber(scad.Resolution(deref(a.number("v")))))
	})
	transform("fragment_size", "v", func(a *args) any {
		a.need("v")
		return preview(a, prim.FragmentSize(deref(a.length("v"))))
	})

	operator("offset", 2, 2, "r", func(a *args) any {
		if d := a.length("delta"); d != nil {
			o := prim.NewOffsetDelta(*d)
			if v := a.boolean("chamfer"); v != nil {
				o = o.Chamfer(*v)
			}
			return o
		}
		a.need("r")
		return prim.NewOffset(deref(a.length("r")))
	})
	operator("linear_extrude", 2, 3, "height", func(a *args) any {
		a.need("height")
		e := prim.NewLinearExtrude(deref(a.length("height")))
		if v := a.boolean("center"); v != nil {
			e = e.Center(*v)
		}
		if v := a.number("convexity"); v != nil {
			e = e.Convexity(int(*v))
		}
		if v := a.angle("twist"); v != nil {
			e = e.Twist(*v)
		}
		if v := a.number("slices"); v != nil {
			e = e.Slices(int(*v))
		}
		if v := a.scalar("scale"); v != nil {
			e = e.Scale(*v)
		}
		return e
	})
	operator("rotate_extrude", 2, 3, "angle", func(a *args) any {
		e := prim.NewRotateExtrude()
		if v := a.angle("angle"); v != nil {
			e = e.Angle(*v)
		}
		if v := a.number("convexity"); v != nil {
			e = e.Convexity(int(*v))
		}
		if v := a.number("fn"); v != nil {
			e = e.Resolution(scad.Resolution(*v))
		}
		return e
	})
	operator("projection", 3, 2, "cut", func(a *args) any {
		p := prim.NewProjection()
		if v := a.boolean("cut"); v != nil {
			p = p.Cut(*v)
		}
		return p
	})

	// Mask operators take the profile as their input.
	operator("edge", 2, 3, "length", func(a *args) any {
		a.need("length")
		l := deref(a.length("length"))
		return lift(func(o scad.Object[scad.D2]) scad.Object[scad.D3] { return prim.Edge(l, o) })
	})
	operator("face_cylinder", 2, 3, "r", func(a *args) any {
		a.need("r")
		r := deref(a.length("r"))
		return lift(func(o scad.Object[scad.D2]) scad.Object[scad.D3] { return prim.FaceCylinder(r, o) })
	})
	operator("face_cube", 2, 3, "", func(a *args) any {
		a.need("w")
		a.need("h")
		w, h := deref(a.length("w")), deref(a.length("h"))
		return lift(func(o scad.Object[scad.D2]) scad.Object[scad.D3] { return prim.FaceCube(w, h, o) })
	})
}

// lift adapts a profile sweep to an operator.
type lift func(scad.Object[scad.D2]) scad.Object[scad.D3]

func (l lift) Apply(o scad.Object[scad.D2]) scad.Object[scad.D3] { return l(o) }

func preview(a *args, fr prim.Fragment) prim.Fragment {
	if p := a.number("p"); p != nil {
		return fr.Preview(*p)
	}
	return fr
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
