package scene

import (
	"github.com/signadot/go-solid/scad"
)

// Shape is a built object of either dimension.
type Shape struct {
	d2 scad.Object[scad.D2]
	d3 scad.Object[scad.D3]
}

func shape2(o scad.Object[scad.D2]) Shape { return Shape{d2: o} }
func shape3(o scad.Object[scad.D3]) Shape { return Shape{d3: o} }

// Dims returns 2 or 3, or 0 for the zero Shape.
func (s Shape) Dims() int {
	switch {
	case !s.d2.IsZero():
		return 2
	case !s.d3.IsZero():
		return 3
	}
	return 0
}

// Planar returns the object if s is 2D.
func (s Shape) Planar() (scad.Object[scad.D2], bool) {
	return s.d2, !s.d2.IsZero()
}

// Solid returns the object if s is 3D.
func (s Shape) Solid() (scad.Object[scad.D3], bool) {
	return s.d3, !s.d3.IsZero()
}

func (s Shape) Assign(f *scad.Formatter) scad.Assignment {
	if s.Dims() == 2 {
		return s.d2.Assign(f)
	}
	return s.d3.Assign(f)
}

func (s Shape) String() string {
	if s.Dims() == 2 {
		return s.d2.String()
	}
	return s.d3.String()
}

func (s Shape) GoString() string {
	if s.Dims() == 2 {
		return s.d2.GoString()
	}
	return s.d3.GoString()
}
