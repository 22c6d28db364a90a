package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tracked/patch"
)

func runPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch takes a patch file and a document file", cli.ErrUsage)
	}
	patchData, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	tbl, err := loadTable(args[1])
	if err != nil {
		return err
	}
	if cfg.Merge {
		err = patch.ApplyMerge(tbl, patchData)
	} else {
		err = patch.Apply(tbl, patchData)
	}
	if err != nil {
		return err
	}
	return writeTable(cc, tbl)
}
