// Package scad renders trees of solid-modeling nodes into OpenSCAD programs.
//
// # Overview
//
// A model is an immutable tree of [Object] values. Leaves are primitives
// (cubes, circles, imported meshes) and inner nodes are operators
// (translations, extrusions, boolean operations) applied to a child object.
// Every node implements [Scad]: given a [Formatter], it registers the text of
// its own fragment, after registering the fragments of its children, and
// returns an [Assignment] referring to it.
//
// # Deduplication
//
// The Formatter keys every registered fragment by its exact text. Two
// subtrees that render to the same text share one top-level definition no
// matter where they occur in the tree or how they were built:
//
//	bolt := prim.Cylinder(20, 3).IntoObject()
//	plate := prim.Cube(scad.Length3{40, 40, 5}).IntoObject().
//		Difference(bolt.Then(prim.Translate(scad.Length3{10, 10, 0}))).
//		Difference(bolt.Then(prim.Translate(scad.Length3{30, 30, 0})))
//	fmt.Println(plate) // one cylinder definition, referenced twice
//
// Definitions are printed in the order they were first registered, so output
// is byte-for-byte deterministic.
//
// # Dimensions
//
// Objects carry their dimension as a type parameter, either [D2] or [D3].
// Composition is only defined between objects of the same dimension; an
// [Operator] may map one dimension to another (a linear extrusion is an
// Operator[D2, D3]).
//
// # Composition
//
// [Apply] is the single composition primitive: it pipes an object through an
// operator. [Object.Then] applies a dimension-preserving [Template], and
// [Object.Union], [Object.Difference] and [Object.Intersection] group two
// objects in a [Block] and apply the matching boolean operator to it.
//
// # Thread Safety
//
// Objects are read-only after construction and may be shared and rendered
// from several goroutines at once. A Formatter belongs to a single render
// pass and must not be shared.
package scad
