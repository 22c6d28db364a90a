package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/tracked"
	"github.com/signadot/tracked/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: view takes one file", cli.ErrUsage)
	}
	t, err := loadTable(args[0])
	if err != nil {
		return err
	}
	return writeTable(cc, t)
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: get takes a path and a file", cli.ErrUsage)
	}
	path, err := tracked.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	t, err := loadTable(args[1])
	if err != nil {
		return err
	}
	v := t.Get(path[0])
	for _, k := range path[1:] {
		sub, ok := v.(*tracked.Table)
		if !ok {
			v = nil
			break
		}
		v = sub.Get(k)
	}
	switch x := v.(type) {
	case nil:
		fmt.Fprintln(cc.Out, "absent")
	case *tracked.Table:
		data, err := encode.MarshalYAML(x)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(data)
		return err
	default:
		fmt.Fprintln(cc.Out, x)
	}
	return nil
}

// parseValue decodes a command line value argument as YAML, so both
// scalars and inline containers work.
func parseValue(s string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	switch v.(type) {
	case map[string]any, map[any]any, []any:
		return tracked.FromAny(v)
	default:
		return v, nil
	}
}
