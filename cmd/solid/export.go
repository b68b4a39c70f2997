package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/signadot/go-solid/export"
	"github.com/signadot/go-solid/format"

	"github.com/scott-cotton/cli"
)

func exportScene(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		cfg.Export.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: export requires one argument, a scene file", cli.ErrUsage)
	}
	path := args[0]
	sc := cfg.scene()
	s, err := loadScene(sc, path)
	if err != nil {
		return err
	}
	shape, err := s.Build()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	formats := format.Defaults(shape.Dims())
	if cfg.Formats != "" {
		formats, err = format.ParseFormats(cfg.Formats)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	for _, f := range formats {
		if f != format.PNGFormat && f.Is2D() != (shape.Dims() == 2) {
			return fmt.Errorf("%w: cannot export a %dD scene as %s", cli.ErrUsage, shape.Dims(), f)
		}
	}

	name := cfg.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	ex := &export.Exporter{
		Dir:     cfg.Dir,
		Binary:  cfg.Binary,
		Log:     theLog,
		Force:   cfg.Force,
		Options: sc.scadOpts(),
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	res, err := ex.Export(ctx, name, shape, formats...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, res.Program)
	for _, out := range res.Outputs {
		fmt.Fprintln(cc.Out, out)
	}
	return nil
}
