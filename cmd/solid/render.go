package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-solid/highlight"
	"github.com/signadot/go-solid/scad"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		cfg.Render.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: render requires one argument, a scene file", cli.ErrUsage)
	}
	sc := cfg.scene()
	s, err := loadScene(sc, args[0])
	if err != nil {
		return err
	}
	shape, err := s.Build()
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	program := scad.ToScad(shape, sc.scadOpts()...) + "\n"

	if cfg.Out == "" || cfg.Out == "-" {
		return writeProgram(cfg, cc.Out, program)
	}
	f, err := os.Create(cfg.Out)
	if err != nil {
		return err
	}
	if err := writeProgram(cfg, f, program); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeProgram(cfg *RenderConfig, w io.Writer, program string) error {
	if cfg.colorize(w) {
		// fatih/color disables itself when stdout is not a terminal.
		color.NoColor = false
		program = highlight.Program(program, highlight.NewPalette())
	}
	_, err := io.WriteString(w, program)
	return err
}
