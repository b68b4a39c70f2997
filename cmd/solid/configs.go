package main

import (
	"io"
	"os"

	"github.com/signadot/go-solid/scad"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Gops bool `cli:"name=gops desc='start the gops diagnostics agent'"`

	Main *cli.Command
}

// SceneConfig holds the options shared by commands that load a scene.
// The cli tags live on the command configs.
type SceneConfig struct {
	Params map[string]any
	Merge  string
	Patch  string
	Hoist  bool
}

func (sc SceneConfig) scadOpts() []scad.Option {
	if !sc.Hoist {
		return nil
	}
	return []scad.Option{scad.HoistValues(true)}
}

type RenderConfig struct {
	*MainConfig
	Params map[string]any

	Out   string `cli:"name=o desc='output file (default stdout)'"`
	Merge string `cli:"name=merge desc='merge patch file (JSON or YAML) applied to the scene'"`
	Patch string `cli:"name=patch desc='JSON patch file applied to the scene'"`
	Hoist bool   `cli:"name=hoist desc='emit literal values as function definitions'"`
	Color bool   `cli:"name=color desc='colour the output'"`

	Render *cli.Command
}

// colorize reports whether output to w is coloured: as requested by
// -color when given, otherwise when w is a terminal.
func (cfg *RenderConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Render.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *RenderConfig) scene() SceneConfig {
	return SceneConfig{Params: cfg.Params, Merge: cfg.Merge, Patch: cfg.Patch, Hoist: cfg.Hoist}
}

type ExportConfig struct {
	*MainConfig
	Params map[string]any

	Merge   string `cli:"name=merge desc='merge patch file (JSON or YAML) applied to the scene'"`
	Patch   string `cli:"name=patch desc='JSON patch file applied to the scene'"`
	Hoist   bool   `cli:"name=hoist desc='emit literal values as function definitions'"`
	Dir     string `cli:"name=dir desc='output directory' default=out"`
	Formats string `cli:"name=f desc='comma separated export formats (default stl, or svg for 2D scenes)'"`
	Force   bool   `cli:"name=force desc='render even if the program is unchanged'"`
	Binary  string `cli:"name=openscad desc='renderer binary' default=openscad"`
	Name    string `cli:"name=name desc='output file stem (default: scene file name)'"`

	Export *cli.Command
}

func (cfg *ExportConfig) scene() SceneConfig {
	return SceneConfig{Params: cfg.Params, Merge: cfg.Merge, Patch: cfg.Patch, Hoist: cfg.Hoist}
}

type PrimsConfig struct {
	*MainConfig

	Prims *cli.Command
}
