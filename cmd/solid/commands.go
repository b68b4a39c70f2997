package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "solid").
		WithSynopsis("solid [opts] command [opts]").
		WithDescription("solid renders YAML scene files to OpenSCAD programs and exports them.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return solidMain(cfg, cc, args)
		}).
		WithSubs(
			RenderCommand(cfg),
			ExportCommand(cfg),
			PrimsCommand(cfg))
}

func paramOpt(params map[string]any) *cli.Opt {
	return &cli.Opt{
		Name:        "p",
		Description: "set a scene parameter, the value is parsed as YAML",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(paramOptTypeFunc(params)), "(key=val)"),
	}
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg, Params: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, paramOpt(cfg.Params))
	return cli.NewCommandAt(&cfg.Render, "render").
		WithAliases("r").
		WithSynopsis("render [-o file] [-p key=val]... [-merge file] [-patch file] [-hoist] [-color] scene.yaml").
		WithDescription("Render a scene file to an OpenSCAD program").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return render(cfg, cc, args)
		})
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{
		MainConfig: mainCfg,
		Params:     map[string]any{},
		Dir:        "out",
		Binary:     "openscad",
	}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, paramOpt(cfg.Params))
	return cli.NewCommandAt(&cfg.Export, "export").
		WithAliases("x").
		WithSynopsis("export [-dir d] [-f stl,svg] [-force] [-openscad bin] [-p key=val]... scene.yaml").
		WithDescription("Render a scene and export it with openscad").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return exportScene(cfg, cc, args)
		})
}

func PrimsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PrimsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Prims, "prims").
		WithSynopsis("prims").
		WithDescription("List the primitives available in scene files").
		WithRun(func(cc *cli.Context, args []string) error {
			return prims(cfg, cc, args)
		})
}
