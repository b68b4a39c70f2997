package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/signadot/go-solid/scene"

	"github.com/scott-cotton/cli"
)

func prims(cfg *PrimsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Prims.Parse(cc, args)
	if err != nil {
		cfg.Prims.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: prims takes no arguments", cli.ErrUsage)
	}
	w := tabwriter.NewWriter(cc.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tIN\tOUT")
	for _, p := range scene.Primitives() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.Kind, dims(p.In), dims(p.Out))
	}
	return w.Flush()
}

func dims(d int) string {
	if d == 0 {
		return "any"
	}
	return strconv.Itoa(d) + "D"
}
