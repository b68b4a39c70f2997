package format

import (
	"errors"
	"fmt"
	"strings"
)

type Format int

const (
	STLFormat Format = iota
	OFFFormat
	AMFFormat
	ThreeMFFormat
	SVGFormat
	DXFFormat
	PDFFormat
	PNGFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"stl": STLFormat,
		"off": OFFFormat,
		"amf": AMFFormat,
		"3mf": ThreeMFFormat,
		"svg": SVGFormat,
		"dxf": DXFFormat,
		"pdf": PDFFormat,
		"png": PNGFormat,
	}[strings.ToLower(v)]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// ParseFormats parses a comma separated list such as "stl,png".
func ParseFormats(v string) ([]Format, error) {
	var res []Format
	for part := range strings.SplitSeq(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f, err := ParseFormat(part)
		if err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	return res, nil
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case STLFormat:
		return []byte("stl"), nil
	case OFFFormat:
		return []byte("off"), nil
	case AMFFormat:
		return []byte("amf"), nil
	case ThreeMFFormat:
		return []byte("3mf"), nil
	case SVGFormat:
		return []byte("svg"), nil
	case DXFFormat:
		return []byte("dxf"), nil
	case PDFFormat:
		return []byte("pdf"), nil
	case PNGFormat:
		return []byte("png"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Is2D reports whether the format holds planar output. PNG is an image of
// either dimension and is not 2D.
func (f Format) Is2D() bool {
	return f == SVGFormat || f == DXFFormat || f == PDFFormat
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	d, err := f.MarshalText()
	if err != nil {
		return ""
	}
	return "." + string(d)
}

// AllFormats returns all supported formats, meshes first.
func AllFormats() []Format {
	return []Format{STLFormat, OFFFormat, AMFFormat, ThreeMFFormat, SVGFormat, DXFFormat, PDFFormat, PNGFormat}
}

// Defaults returns the formats exported when none are requested.
func Defaults(dims int) []Format {
	if dims == 2 {
		return []Format{SVGFormat}
	}
	return []Format{STLFormat}
}
