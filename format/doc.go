// Package format enumerates the file formats the OpenSCAD renderer can
// export.
package format
