// Package scene compiles declarative YAML scene files into object trees.
//
// A scene names its dimension, a set of parameters and a root node:
//
//	dims: 3
//	params:
//	  w: 10
//	  h: .[w * 2]
//	root:
//	  difference:
//	  children:
//	    - cube: [".[w]", ".[h]", 5]
//	    - cylinder: {h: 12, r: 2}
//	      then:
//	        - translate: [5, 5, -1]
//
// A node is a mapping with exactly one primitive key. Its value holds the
// arguments, either as a mapping or as a shorthand for the first argument.
// Set operators and transforms take their input from children, which are
// unioned first. then lists operators applied in order.
//
// Strings of the form .[expr] are evaluated with expr-lang against the
// resolved parameters. Parameters may refer to each other in any order.
//
// Dimensions are checked while building; mixing planar and solid objects is
// reported as ErrDimension with the path of the offending node.
package scene
