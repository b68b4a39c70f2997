package scad

import (
	"fmt"
	"io"
)

// Scad is implemented by everything that can be rendered.
//
// Assign registers the fragments of any nested values with f first, then
// registers its own fragment and returns a reference to it. Equal content
// must produce equal fragment text so that deduplication applies, and Assign
// must not have side effects outside f.
type Scad interface {
	Assign(f *Formatter) Assignment
}

// Node is a value that can be carried by an Object: renderable, printable as
// program text through String and describable for debugging through
// GoString.
type Node interface {
	Scad
	fmt.Stringer
	fmt.GoStringer
}

// ToScad renders v as a complete program using a fresh Formatter.
func ToScad(v Scad, opts ...Option) string {
	f := NewFormatter(opts...)
	a := v.Assign(f)
	return f.String() + "\n" + a.String() + ";"
}

// Render writes the program for v to w.
func Render(w io.Writer, v Scad, opts ...Option) error {
	_, err := io.WriteString(w, ToScad(v, opts...))
	return err
}

// Arg is one named argument of a call.
type Arg struct {
	Name  string
	Value Assignment
	Set   bool
}

// Req assigns v and returns it as a present argument.
func Req(f *Formatter, name string, v Scad) Arg {
	return Arg{Name: name, Value: v.Assign(f), Set: true}
}

// Opt assigns *v when v is non-nil. A nil v yields an absent argument, which
// Call leaves out.
func Opt[T Scad](f *Formatter, name string, v *T) Arg {
	if v == nil {
		return Arg{Name: name}
	}
	return Arg{Name: name, Value: (*v).Assign(f), Set: true}
}
