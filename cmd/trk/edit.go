package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tracked"
)

func edit(cfg *EditConfig, cc *cli.Context, args []string, del bool) error {
	want := 3
	if del {
		want = 2
	}
	if len(args) != want {
		return fmt.Errorf("%w: wrong number of arguments", cli.ErrUsage)
	}
	path, err := tracked.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	var value any
	file := args[1]
	if !del {
		value, err = parseValue(args[1])
		if err != nil {
			return fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
		file = args[2]
	}
	tbl, err := loadTable(file)
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
	if err := setAt(tr, path, value); err != nil {
		return err
	}
	return writeTable(cc, tbl)
}

// setAt walks to the parent of the final key through observed views
// and performs the final write through the view, so the change log
// carries the full path.
func setAt(tr *tracked.Tracked, path tracked.Path, v any) error {
	cur := tr
	for _, k := range path[:len(path)-1] {
		next, ok := cur.Get(k).(*tracked.Tracked)
		if !ok {
			return fmt.Errorf("%w: no table at %s", tracked.ErrNotTable, cur.Path().Extend(k))
		}
		cur = next
	}
	cur.Set(path[len(path)-1], v)
	return nil
}

func update(cfg *UpdateConfig, cc *cli.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: update takes a path, a value and a file", cli.ErrUsage)
	}
	path, err := tracked.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	value, err := parseValue(args[1])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	tbl, err := loadTable(args[2])
	if err != nil {
		return err
	}
	if err := tracked.DeepUpdate(tbl, path, value); err != nil {
		return err
	}
	return writeTable(cc, tbl)
}
