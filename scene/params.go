package scene

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/signadot/go-solid/debug"
)

// resolveParams evaluates params in dependency order. Each round evaluates
// whatever has its references available; a round without progress means a
// cycle or an undefined name.
func resolveParams(params map[string]any) (map[string]any, error) {
	env := make(map[string]any, len(params))
	pending := slices.Sorted(maps.Keys(params))
	for len(pending) > 0 {
		var (
			next     []string
			firstErr error
		)
		for _, k := range pending {
			v, err := expand(params[k], env)
			if err != nil {
				next = append(next, k)
				if firstErr == nil {
					firstErr = fmt.Errorf("%s: %w", k, err)
				}
				continue
			}
			if debug.Scene() {
				debug.Logf("scene: param %s = %v\n", k, v)
			}
			env[k] = v
		}
		if len(next) == len(pending) {
			return nil, fmt.Errorf("%w: cannot resolve %s: %w", ErrParam, strings.Join(next, ", "), firstErr)
		}
		pending = next
	}
	return env, nil
}
