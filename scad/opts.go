package scad

type Option func(*Formatter)

// HoistValues makes every registered expression a top-level function
// definition, referenced as _vN(). By default expressions are printed in
// place.
func HoistValues(v bool) Option {
	return func(f *Formatter) { f.hoistValues = v }
}
