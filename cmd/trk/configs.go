package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/tracked"
	"github.com/signadot/tracked/encode"
	"github.com/signadot/tracked/eval"
	"github.com/signadot/tracked/render"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='force colored output'"`
	NoColor bool   `cli:"name=nocolor desc='disable colored output'"`
	Filter  string `cli:"name=f desc='expr filter applied to the change log'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type EditConfig struct {
	*MainConfig
	Edit *cli.Command
}

type UpdateConfig struct {
	*MainConfig
	Update *cli.Command
}

type PatchConfig struct {
	Merge bool `cli:"name=m aliases=merge desc='apply an RFC 7386 merge patch'"`
	*MainConfig
	Patch *cli.Command
}

type ScriptConfig struct {
	*MainConfig
	Script *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) renderer() *render.Renderer {
	useColor := isatty.IsTerminal(os.Stdout.Fd())
	if cfg.Color {
		useColor = true
	}
	if cfg.NoColor {
		useColor = false
	}
	return &render.Renderer{Color: useColor}
}

// changeLog builds the callback printing rendered changes to cc.Out,
// wrapped by the -f filter when one is given.
func (cfg *MainConfig) changeLog(cc *cli.Context) (tracked.ChangeFunc, error) {
	r := cfg.renderer()
	fn := func(c tracked.Change) {
		fmt.Fprintln(cc.Out, r.Change(c))
	}
	if cfg.Filter == "" {
		return fn, nil
	}
	f, err := eval.Compile(cfg.Filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	return f.Wrap(fn), nil
}

func loadTable(path string) (*tracked.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := encode.UnmarshalYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func writeTable(cc *cli.Context, t *tracked.Table) error {
	data, err := encode.MarshalYAML(t)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(data)
	return err
}
