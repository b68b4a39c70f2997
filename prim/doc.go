// Package prim provides the OpenSCAD building blocks: 2D and 3D primitives,
// transforms, extrusions and a set of convenience modules.
//
// Builders are immutable values; setters return a modified copy. Optional
// arguments that were never set are left out of the rendered call so that
// OpenSCAD applies its own defaults.
//
//	base := prim.NewCube(scad.Length3{40, 20, 5}).Center(true).IntoObject()
//	peg := prim.NewCylinder(10, 3).IntoObject().Then(prim.Up(5))
//	part := base.Union(peg)
//
// Leaves implement scad.IntoObject for their dimension. Transforms that work
// in any dimension implement scad.Template and are applied with
// scad.Object.Then; operators that change or restrict the dimension
// (extrusions, projection, offset) implement scad.Operator.
package prim
