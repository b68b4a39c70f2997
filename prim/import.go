package prim

import (
	"fmt"

	"github.com/signadot/go-solid/scad"
)

// Import is import(path) of an external model file.
type Import struct {
	path string
}

func (i Import) Assign(f *scad.Formatter) scad.Assignment {
	return f.Emit(fmt.Sprintf("import(%q)", i.path), scad.KindCall)
}

func (i Import) String() string   { return render(i) }
func (i Import) GoString() string { return fmt.Sprintf("Import { path: %q }", i.path) }

// ImportSTL imports a mesh.
func ImportSTL(path string) scad.Object[scad.D3] {
	return scad.NewObject[scad.D3](Import{path: path})
}

// ImportAMF imports an AMF model.
func ImportAMF(path string) scad.Object[scad.D3] {
	return scad.NewObject[scad.D3](Import{path: path})
}

// ImportSVG imports a drawing as a planar object.
func ImportSVG(path string) scad.Object[scad.D2] {
	return scad.NewObject[scad.D2](Import{path: path})
}
