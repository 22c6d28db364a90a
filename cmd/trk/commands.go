package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "trk").
		WithSynopsis("trk [opts] command [opts]").
		WithDescription("trk observes and edits structured documents as tracked tables.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return trkMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			DelCommand(cfg),
			UpdateCommand(cfg),
			PatchCommand(cfg),
			ScriptCommand(cfg))
}

func trkMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view <file>").
		WithDescription("parse a document and re-encode it").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> <file>").
		WithDescription("print the value at a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Edit, "set").
		WithAliases("s").
		WithSynopsis("set <path> <value> <file>").
		WithDescription("write a value through the observed path and log the changes").
		WithRun(func(cc *cli.Context, args []string) error {
			return edit(cfg, cc, args, false)
		})
}

func DelCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Edit, "del").
		WithSynopsis("del <path> <file>").
		WithDescription("remove the value at a path through the observed write path").
		WithRun(func(cc *cli.Context, args []string) error {
			return edit(cfg, cc, args, true)
		})
}

func UpdateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UpdateConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Update, "update").
		WithAliases("u").
		WithSynopsis("update <path> <value> <file>").
		WithDescription("bulk deep update: creates intermediate tables, logs no changes").
		WithRun(func(cc *cli.Context, args []string) error {
			return update(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch [-m] <patchfile> <file>").
		WithDescription("apply an RFC 6902 JSON patch (or RFC 7386 with -m)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runPatch(cfg, cc, args)
		})
}

func ScriptCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ScriptConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Script, "script").
		WithSynopsis("script <luafile> <file>").
		WithDescription("run a Lua script against the tracked document bound as 'doc'").
		WithRun(func(cc *cli.Context, args []string) error {
			return script(cfg, cc, args)
		})
}
