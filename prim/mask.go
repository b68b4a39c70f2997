package prim

import "github.com/signadot/go-solid/scad"

// Masks are planar profiles subtracted along the edges of a part to round
// or bevel them. Each profile sits in the third quadrant with its corner at
// the origin, so it lines up with an edge after a move.

const maskPadding scad.Length = 0.01

// previewPadding is a thin border along the two open sides of a w by h
// profile. It only appears in preview, where coincident faces flicker.
func previewPadding(w, h scad.Length) scad.Object[scad.D2] {
	u := NewSquare(scad.Length2{w, maskPadding}).Center(true).IntoObject().Then(Fwd(h / 2))
	o := NewSquare(scad.Length2{maskPadding, h}).Center(true).IntoObject().Then(Right(w / 2))
	return u.Union(o).Then(PreviewOnly())
}

// Fillet returns the profile that rounds an edge to radius r.
func Fillet(r scad.Length) scad.Object[scad.D2] {
	c := NewCircle(r).IntoObject().Then(Back(r / 2)).Then(Left(r / 2))
	s := NewSquare(scad.Length2{r, r}).Center(true).IntoObject()
	return s.Difference(c).
		Union(previewPadding(r, r)).
		Then(Back(r / 2)).
		Then(Left(r / 2))
}

// Chamfer returns the profile that bevels an edge by w along x and h
// along y.
func Chamfer(w, h scad.Length) scad.Object[scad.D2] {
	tri := RightTriangle(w, h).Then(ZRot(180))
	return tri.Union(previewPadding(w, h)).
		Then(Back(h / 2)).
		Then(Left(w / 2))
}

// Edge extrudes profile to a straight edge mask of the given length,
// centered on the origin along z.
func Edge(length scad.Length, profile scad.IntoObject[scad.D2]) scad.Object[scad.D3] {
	return scad.Apply[scad.D2, scad.D3](profile, NewLinearExtrude(length).Center(true))
}

// FaceCylinder sweeps profile around the rim of a cylinder face of radius r.
func FaceCylinder(r scad.Length, profile scad.IntoObject[scad.D2]) scad.Object[scad.D3] {
	moved := profile.IntoObject().Then(Right(r))
	return scad.Apply[scad.D2, scad.D3](moved, NewRotateExtrude())
}

// FaceCube runs profile along the four edges of a w by h face centered on
// the origin.
func FaceCube(w, h scad.Length, profile scad.IntoObject[scad.D2]) scad.Object[scad.D3] {
	a := Edge(h, profile).Then(XRot(90))
	b := Edge(w, profile).Then(NewRotate(scad.Angle3{90, 0, 90}))
	a1 := a.Then(Right(w / 2))
	a2 := a1.Then(NewMirror(scad.Scalar3{1, 0, 0}))
	b1 := b.Then(Fwd(h / 2))
	b2 := b1.Then(NewMirror(scad.Scalar3{0, 1, 0}))
	return scad.Union[scad.D3](a1, a2, b1, b2)
}
