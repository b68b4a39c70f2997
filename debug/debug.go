package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Emit   bool
	Scene  bool
	Export bool
}

var d *debug

func init() {
	d = &debug{}
	d.Emit = boolEnv("SOLID_DEBUG_EMIT")
	d.Scene = boolEnv("SOLID_DEBUG_SCENE")
	d.Export = boolEnv("SOLID_DEBUG_EXPORT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Emit reports whether fragment registrations should be traced.
func Emit() bool {
	return d.Emit
}
func Scene() bool {
	return d.Scene
}
func Export() bool {
	return d.Export
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
