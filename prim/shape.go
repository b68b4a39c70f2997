package prim

import (
	"math"

	"github.com/signadot/go-solid/scad"
)

// RightTriangle returns a right triangle with legs w along x and h along y,
// centered on the origin with the right angle at the bottom left.
func RightTriangle(w, h scad.Length) scad.Object[scad.D2] {
	long := max(w, h) * 2
	angle := scad.Angle(math.Atan2(float64(h), float64(w)) * 180 / math.Pi)
	mask := NewSquare(scad.Length2{long, long}).IntoObject().Then(ZRot(angle))
	return NewSquare(scad.Length2{w, h}).IntoObject().
		Difference(mask).
		Then(Back(h / 2)).
		Then(Left(w / 2)).
		Then(NewMirror(scad.Scalar3{1, 0, 0}))
}

// Equilateral returns an equilateral triangle with side length l centered
// on the origin with one side parallel to x.
func Equilateral(l scad.Length) scad.Object[scad.D2] {
	r := scad.Length(math.Sqrt(3) / 3 * float64(l))
	return NewCircle(r).Resolution(3).IntoObject().Then(ZRot(-30))
}
