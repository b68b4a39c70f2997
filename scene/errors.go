package scene

import "errors"

var (
	ErrSyntax           = errors.New("scene syntax error")
	ErrUnknownPrimitive = errors.New("unknown primitive")
	ErrDimension        = errors.New("dimension mismatch")
	ErrParam            = errors.New("parameter error")
)
