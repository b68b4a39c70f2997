package scene

import (
	"fmt"
	"maps"
	"os"

	"github.com/signadot/go-solid/debug"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

// Scene is a decoded scene file.
type Scene struct {
	Dims   int            `yaml:"dims"`
	Params map[string]any `yaml:"params"`
	Root   any            `yaml:"root"`
}

type options struct {
	overlays []func(doc []byte) ([]byte, error)
	params   map[string]any
}

// Option configures Parse and Load.
type Option func(*options)

// MergePatch applies an RFC 7386 merge patch, given as JSON or YAML, to
// the scene before decoding. Overlays apply in the order given.
func MergePatch(patch []byte) Option {
	return func(o *options) {
		o.overlays = append(o.overlays, func(doc []byte) ([]byte, error) {
			p, err := yaml.YAMLToJSON(patch)
			if err != nil {
				return nil, err
			}
			return jsonpatch.MergePatch(doc, p)
		})
	}
}

// JSONPatch applies an RFC 6902 patch, given as JSON or YAML, to the scene
// before decoding.
func JSONPatch(patch []byte) Option {
	return func(o *options) {
		o.overlays = append(o.overlays, func(doc []byte) ([]byte, error) {
			p, err := yaml.YAMLToJSON(patch)
			if err != nil {
				return nil, err
			}
			ops, err := jsonpatch.DecodePatch(p)
			if err != nil {
				return nil, err
			}
			return ops.Apply(doc)
		})
	}
}

// Params overrides parameter values. Overridden parameters are visible to
// the expressions of the others.
func Params(params map[string]any) Option {
	return func(o *options) {
		if o.params == nil {
			o.params = map[string]any{}
		}
		maps.Copy(o.params, params)
	}
}

// Load reads and parses the scene file at path.
func Load(path string, opts ...Option) (*Scene, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene, applying any overlays first.
func Parse(data []byte, opts ...Option) (*Scene, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	doc, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	for i, overlay := range o.overlays {
		doc, err = overlay(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: overlay %d: %w", ErrSyntax, i, err)
		}
	}
	if debug.Scene() {
		debug.Logf("scene: document %s\n", doc)
	}
	s := &Scene{}
	if err := yaml.Unmarshal(doc, s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if s.Dims == 0 {
		s.Dims = 3
	}
	if s.Dims != 2 && s.Dims != 3 {
		return nil, fmt.Errorf("%w: dims must be 2 or 3, got %d", ErrSyntax, s.Dims)
	}
	if s.Root == nil {
		return nil, fmt.Errorf("%w: missing root", ErrSyntax)
	}
	if s.Params == nil {
		s.Params = map[string]any{}
	}
	for k, v := range o.params {
		s.Params[k] = v
	}
	s.Params = normalize(s.Params).(map[string]any)
	s.Root = normalize(s.Root)
	return s, nil
}
