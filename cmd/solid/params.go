package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/signadot/go-solid/scene"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func paramOptTypeFunc(params map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := paramFunc(params, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

// paramFunc sets params[key] from a key=val argument. Dotted keys address
// nested maps.
func paramFunc(params map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return fmt.Errorf("%w: %s: %w", cli.ErrUsage, key, err)
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	m := params
	for i, part := range parts {
		if i == n-1 {
			m[part] = v
			break
		}
		next := m[part]
		if next == nil {
			next = map[string]any{}
			m[part] = next
		}
		nextMap, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: cannot access %s, list or scalar", cli.ErrUsage, strings.Join(parts[:i+1], "."))
		}
		m = nextMap
	}
	return nil
}

// loadScene loads the scene at path with the overlays and parameter
// overrides named by sc.
func loadScene(sc SceneConfig, path string) (*scene.Scene, error) {
	var opts []scene.Option
	if sc.Merge != "" {
		d, err := os.ReadFile(sc.Merge)
		if err != nil {
			return nil, err
		}
		opts = append(opts, scene.MergePatch(d))
	}
	if sc.Patch != "" {
		d, err := os.ReadFile(sc.Patch)
		if err != nil {
			return nil, err
		}
		opts = append(opts, scene.JSONPatch(d))
	}
	if len(sc.Params) != 0 {
		opts = append(opts, scene.Params(sc.Params))
	}
	return scene.Load(path, opts...)
}
