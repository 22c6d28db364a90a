package main

import (
	"fmt"

	"github.com/Shopify/go-lua"
	"github.com/scott-cotton/cli"

	"github.com/signadot/tracked"
	"github.com/signadot/tracked/luabind"
)

// script runs a Lua file with the tracked document bound as the global
// "doc" and the tracked module open. Writes made by the script go
// through the observer and land in the change log as they happen.
func script(cfg *ScriptConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: script takes a Lua file and a document file", cli.ErrUsage)
	}
	tbl, err := loadTable(args[1])
	if err != nil {
		return err
	}
	log, err := cfg.changeLog(cc)
	if err != nil {
		return err
	}
	tr, err := tracked.Track(tbl, log)
	if err != nil {
		return err
	}

	l := lua.NewState()
	lua.OpenLibraries(l)
	luabind.Open(l)
	luabind.Push(l, tr)
	l.SetGlobal("doc")

	if err := lua.LoadFile(l, args[0], ""); err != nil {
		return fmt.Errorf("load lua: %w", err)
	}
	if err := l.ProtectedCall(0, 0, 0); err != nil {
		return fmt.Errorf("run lua: %w", err)
	}
	return writeTable(cc, tbl)
}
