package prim

import "github.com/signadot/go-solid/scad"

// Screw is a metric screw from the BOSL library, which must be on the
// OpenSCAD library path.
type Screw struct {
	countersunk *scad.Bool
	headlen     *scad.Length
	headsize    *scad.Length
	screwlen    *scad.Length
	pitch       *scad.Length
	screwsize   *scad.Length
}

// NewScrew returns a screw of nominal diameter size and shaft length l.
func NewScrew(size, l scad.Length) Screw {
	return Screw{screwsize: &size, screwlen: &l}
}

func (s Screw) Countersunk(v bool) Screw {
	s.countersunk = ref(scad.Bool(v))
	return s
}

func (s Screw) Head(size, l scad.Length) Screw {
	s.headsize = &size
	s.headlen = &l
	return s
}

func (s Screw) Pitch(v scad.Length) Screw {
	s.pitch = &v
	return s
}

func (s Screw) Assign(f *scad.Formatter) scad.Assignment {
	f.Includes("<BOSL/constants.scad>")
	f.Uses("<BOSL/metric_screws.scad>")
	return f.Call("screw", []scad.Arg{
		scad.Opt(f, "countersunk", s.countersunk),
		scad.Opt(f, "headlen", s.headlen),
		scad.Opt(f, "headsize", s.headsize),
		scad.Opt(f, "screwlen", s.screwlen),
		scad.Opt(f, "pitch", s.pitch),
		scad.Opt(f, "screwsize", s.screwsize),
	}, false)
}

func (s Screw) String() string { return render(s) }

func (s Screw) GoString() string {
	var fs fields
	fs = field(fs, "countersunk", s.countersunk)
	fs = field(fs, "headlen", s.headlen)
	fs = field(fs, "headsize", s.headsize)
	fs = field(fs, "screwlen", s.screwlen)
	fs = field(fs, "pitch", s.pitch)
	fs = field(fs, "screwsize", s.screwsize)
	return fs.describe("Screw")
}

func (s Screw) IntoObject() scad.Object[scad.D3] { return scad.NewObject[scad.D3](s) }
