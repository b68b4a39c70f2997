package scad

import (
	"cmp"
	"fmt"
	"strconv"
)

// Kind is how a registered fragment is defined and referenced.
type Kind int

const (
	// KindInline marks an unregistered literal printed verbatim at its use site.
	KindInline Kind = iota
	// KindValue is an expression: a number, a string or a vector.
	KindValue
	// KindCall is a call that may be given children.
	KindCall
	// KindModule is a standalone module body with its own parameter list.
	KindModule
)

func (k Kind) String() string {
	switch k {
	case KindInline:
		return "inline"
	case KindValue:
		return "value"
	case KindCall:
		return "call"
	case KindModule:
		return "module"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

const handlePrefix = "_v"

// Assignment refers to a fragment. It is either a handle to a fragment
// registered in a Formatter or an inline literal.
type Assignment struct {
	idx  int
	kind Kind
	code string
}

// Handle returns the handle for the fragment registered under index idx.
func Handle(idx int, kind Kind) Assignment {
	if kind == KindInline {
		panic("scad: handle with inline kind")
	}
	return Assignment{idx: idx, kind: kind}
}

// Inline returns an assignment that prints code verbatim and is never
// registered.
func Inline(code string) Assignment {
	return Assignment{idx: -1, kind: KindInline, code: code}
}

func (a Assignment) IsInline() bool { return a.kind == KindInline }
func (a Assignment) Kind() Kind     { return a.kind }

// Index returns the registration index of a handle, or -1 for inline
// assignments.
func (a Assignment) Index() int { return a.idx }

// Name is the name a definition is printed under, empty for inline
// assignments.
func (a Assignment) Name() string {
	if a.kind == KindInline {
		return ""
	}
	return handlePrefix + strconv.Itoa(a.idx)
}

// String is the reference form of the assignment, as used at a call site.
func (a Assignment) String() string {
	switch a.kind {
	case KindInline:
		return a.code
	case KindModule:
		return a.Name()
	case KindValue:
		if a.code != "" {
			return a.code
		}
	}
	return a.Name() + "()"
}

func (a Assignment) GoString() string {
	if a.kind == KindInline {
		return fmt.Sprintf("Inline(%q)", a.code)
	}
	return fmt.Sprintf("Handle(%d, %s)", a.idx, a.kind)
}

// Equal reports whether a and b refer to the same fragment. Handles compare
// by index and kind, inline assignments by their code.
func (a Assignment) Equal(b Assignment) bool {
	return Compare(a, b) == 0
}

// Compare orders assignments by index, then kind. Inline assignments sort
// before all handles and among themselves by code.
func Compare(a, b Assignment) int {
	if c := cmp.Compare(a.idx, b.idx); c != 0 {
		return c
	}
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	if a.kind == KindInline {
		return cmp.Compare(a.code, b.code)
	}
	return 0
}

// Assign makes an Assignment usable anywhere a Scad value is expected.
func (a Assignment) Assign(*Formatter) Assignment {
	return a
}
