package scad

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/signadot/go-solid/debug"
)

// Formatter is the state of one render pass. It holds the deduplication
// table mapping fragment text to its handle, the use/include directives and
// the named outputs.
//
// A Formatter is not safe for concurrent use.
type Formatter struct {
	imports     []directive
	assignments map[string]Assignment
	next        int
	outputs     map[string]Assignment

	hoistValues bool
}

func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		assignments: map[string]Assignment{},
		outputs:     map[string]Assignment{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Assign registers v and everything below it.
func (f *Formatter) Assign(v Scad) Assignment {
	return v.Assign(f)
}

// Emit registers text under kind and returns its handle. Text that is
// already registered returns the existing handle unchanged; the kind of the
// first registration wins.
func (f *Formatter) Emit(text string, kind Kind) Assignment {
	if f.assignments == nil {
		f.assignments = map[string]Assignment{}
	}
	if a, ok := f.assignments[text]; ok {
		if debug.Emit() {
			debug.Logf("emit: reuse %s for %q\n", a.Name(), text)
		}
		return a
	}
	if kind == KindInline {
		kind = KindCall
	}
	a := Assignment{idx: f.next, kind: kind}
	if kind == KindValue && !f.hoistValues {
		a.code = text
	}
	f.next++
	f.assignments[text] = a
	if debug.Emit() {
		debug.Logf("emit: %s %s = %q\n", kind, a.Name(), text)
	}
	return a
}

// Value registers an expression.
func (f *Formatter) Value(v any) Assignment {
	return f.Emit(fmt.Sprint(v), KindValue)
}

// Module registers a module body, parameter list included, such as
// "(z=0) { translate([0, 0, z]) children(); }". The returned handle is
// usable as the name passed to Call.
func (f *Formatter) Module(v any) Assignment {
	return f.Emit(fmt.Sprint(v), KindModule)
}

// Uses records a use directive. Duplicates are removed when printing.
func (f *Formatter) Uses(path string) {
	f.imports = append(f.imports, directive{use: true, path: path})
}

// Includes records an include directive. Duplicates are removed when
// printing.
func (f *Formatter) Includes(path string) {
	f.imports = append(f.imports, directive{path: path})
}

// Call builds the call expression name(k=v, ...) from the present arguments.
// Absent arguments are left out entirely. A call without any present
// argument is returned inline and never registered. Otherwise, when operator
// is true the call is marked as applying to the children that follow it.
func (f *Formatter) Call(name string, args []Arg, operator bool) Assignment {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	first := true
	for _, arg := range args {
		if !arg.Set {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(arg.Name)
		b.WriteByte('=')
		b.WriteString(arg.Value.String())
	}
	b.WriteByte(')')
	if first {
		return Inline(b.String())
	}
	if operator {
		b.WriteString(" children()")
	}
	return f.Emit(b.String(), KindCall)
}

// Output names an assignment.
func (f *Formatter) Output(name string, a Assignment) {
	if f.outputs == nil {
		f.outputs = map[string]Assignment{}
	}
	f.outputs[name] = a
}

// Outputs returns a copy of the named outputs.
func (f *Formatter) Outputs() map[string]Assignment {
	return maps.Clone(f.outputs)
}

// Len returns the number of registered fragments.
func (f *Formatter) Len() int {
	return len(f.assignments)
}

type definition struct {
	a    Assignment
	text string
}

func (f *Formatter) definitions() []definition {
	defs := make([]definition, 0, len(f.assignments))
	for text, a := range f.assignments {
		defs = append(defs, definition{a: a, text: text})
	}
	slices.SortFunc(defs, func(x, y definition) int {
		return Compare(x.a, y.a)
	})
	return defs
}

// WriteTo writes the directives followed by one definition per registered
// fragment, in registration order.
func (f *Formatter) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	seen := map[directive]bool{}
	for _, d := range f.imports {
		if seen[d] {
			continue
		}
		seen[d] = true
		b.WriteString(d.String())
		b.WriteByte('\n')
	}
	for _, def := range f.definitions() {
		switch def.a.kind {
		case KindCall:
			fmt.Fprintf(&b, "module %s() { %s; }\n", def.a.Name(), def.text)
		case KindModule:
			fmt.Fprintf(&b, "module %s %s\n", def.a.Name(), def.text)
		case KindValue:
			if f.hoistValues {
				fmt.Fprintf(&b, "function %s() = %s;\n", def.a.Name(), def.text)
			}
		}
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func (f *Formatter) String() string {
	var b strings.Builder
	f.WriteTo(&b)
	return b.String()
}

type directive struct {
	use  bool
	path string
}

func (d directive) String() string {
	if d.use {
		return "use " + d.path + ";"
	}
	return "include " + d.path + ";"
}
