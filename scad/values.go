package scad

import (
	"strconv"
	"strings"
)

// Literal values. Each registers as a KindValue fragment so that repeated
// literals share one fragment.

type Bool bool

func (b Bool) Assign(f *Formatter) Assignment {
	return f.Value(strconv.FormatBool(bool(b)))
}

type Str string

func (s Str) Assign(f *Formatter) Assignment {
	return f.Value(strconv.Quote(string(s)))
}

// Length is a distance in model units.
type Length float64

// Angle is in degrees.
type Angle float64

type Scalar float64

// Resolution is a fragment count ($fn).
type Resolution float64

func (v Length) String() string     { return formatNumber(float64(v)) }
func (v Angle) String() string      { return formatNumber(float64(v)) }
func (v Scalar) String() string     { return formatNumber(float64(v)) }
func (v Resolution) String() string { return formatNumber(float64(v)) }

func (v Length) Assign(f *Formatter) Assignment     { return f.Value(v.String()) }
func (v Angle) Assign(f *Formatter) Assignment      { return f.Value(v.String()) }
func (v Scalar) Assign(f *Formatter) Assignment     { return f.Value(v.String()) }
func (v Resolution) Assign(f *Formatter) Assignment { return f.Value(v.String()) }

// formatNumber gives the shortest decimal that reads back as v, without an
// exponent.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type (
	Length2 [2]Length
	Length3 [3]Length
	Angle3  [3]Angle
	Scalar2 [2]Scalar
	Scalar3 [3]Scalar
)

func (v Length2) Assign(f *Formatter) Assignment { return assignList(f, v[:]) }
func (v Length3) Assign(f *Formatter) Assignment { return assignList(f, v[:]) }
func (v Angle3) Assign(f *Formatter) Assignment  { return assignList(f, v[:]) }
func (v Scalar2) Assign(f *Formatter) Assignment { return assignList(f, v[:]) }
func (v Scalar3) Assign(f *Formatter) Assignment { return assignList(f, v[:]) }

// Splat3 returns a vector with all components set to v.
func Splat3(v Length) Length3 { return Length3{v, v, v} }

// Points2 is a list of planar points.
type Points2 []Length2

func (p Points2) Assign(f *Formatter) Assignment { return assignList(f, p) }

// Points3 is a list of points in space.
type Points3 []Length3

func (p Points3) Assign(f *Formatter) Assignment { return assignList(f, p) }

// Indices is a list of point indices, such as one polygon path or one
// polyhedron face.
type Indices []int

func (ix Indices) Assign(f *Formatter) Assignment {
	parts := make([]string, len(ix))
	for i, v := range ix {
		parts[i] = strconv.Itoa(v)
	}
	return f.Value("[" + strings.Join(parts, ", ") + "]")
}

// Paths is a list of index lists.
type Paths []Indices

func (p Paths) Assign(f *Formatter) Assignment { return assignList(f, p) }

func assignList[T Scad](f *Formatter, items []T) Assignment {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range items {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(item.Assign(f).String())
	}
	b.WriteByte(']')
	return f.Value(b.String())
}
