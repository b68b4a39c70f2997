package scene

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
)

// GetRaw extracts the expression from a .[expr] reference. It returns the
// empty string if v is not in that form.
func GetRaw(v string) string {
	if len(v) < 3 || !strings.HasPrefix(v, ".[") || !strings.HasSuffix(v, "]") {
		return ""
	}
	return v[2 : len(v)-1]
}

func evalExpr(code string, env map[string]any) (any, error) {
	program, err := expr.Compile(code, expr.Env(env))
	if err != nil {
		return nil, err
	}
	v, err := expr.Run(program, env)
	if err != nil {
		return nil, err
	}
	v = normalize(v)
	if err := checkFinite(v); err != nil {
		return nil, err
	}
	return v, nil
}

var errNotFinite = errors.New("result is not a finite number")

// checkFinite rejects NaN and infinities anywhere in v. OpenSCAD has no
// literal for them.
func checkFinite(v any) error {
	switch x := v.(type) {
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return fmt.Errorf("%w: %v", errNotFinite, x)
		}
	case []any:
		for _, elt := range x {
			if err := checkFinite(elt); err != nil {
				return err
			}
		}
	case map[string]any:
		for _, elt := range x {
			if err := checkFinite(elt); err != nil {
				return err
			}
		}
	}
	return nil
}

// expand returns a copy of v with every .[expr] string replaced by its
// value.
func expand(v any, env map[string]any) (any, error) {
	switch x := v.(type) {
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, elt := range x {
			ev, err := expand(elt, env)
			if err != nil {
				return nil, err
			}
			res[k] = ev
		}
		return res, nil
	case []any:
		res := make([]any, len(x))
		for i, elt := range x {
			ev, err := expand(elt, env)
			if err != nil {
				return nil, err
			}
			res[i] = ev
		}
		return res, nil
	case string:
		raw := GetRaw(x)
		if raw == "" {
			return x, nil
		}
		ev, err := evalExpr(raw, env)
		if err != nil {
			return nil, fmt.Errorf("error evaluating %q: %w", raw, err)
		}
		return ev, nil
	default:
		return x, nil
	}
}

// normalize maps decoded numbers to int or float64 so that expressions see
// one integer type.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, elt := range x {
			x[k] = normalize(elt)
		}
		return x
	case []any:
		for i, elt := range x {
			x[i] = normalize(elt)
		}
		return x
	case int8:
		return int(x)
	case int16:
		return int(x)
	case int32:
		return int(x)
	case int64:
		return int(x)
	case uint:
		return int(x)
	case uint8:
		return int(x)
	case uint16:
		return int(x)
	case uint32:
		return int(x)
	case uint64:
		return int(x)
	case float32:
		return float64(x)
	default:
		return x
	}
}

func toFloat(v any) (float64, bool) {
	switch x := normalize(v).(type) {
	case int:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}
