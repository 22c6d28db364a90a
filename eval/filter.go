// Package eval compiles change filters with the expr expression
// language. A filter sees one change at a time through the variables
// path (rendered string), key (final path key), old and new.
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/tracked"
)

// Filter is a compiled change predicate.
type Filter struct {
	prg *vm.Program
}

// Compile builds a Filter from an expr source such as
//
//	path startsWith "$.users" && old != nil
func Compile(src string) (*Filter, error) {
	prg, err := expr.Compile(src,
		expr.Env(map[string]any{}),
		expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", src, err)
	}
	return &Filter{prg: prg}, nil
}

// Match evaluates the filter against one change.
func (f *Filter) Match(c tracked.Change) (bool, error) {
	var key any
	if len(c.Path) > 0 {
		key = c.Path[len(c.Path)-1]
	}
	res, err := expr.Run(f.prg, map[string]any{
		"path": c.Path.String(),
		"key":  key,
		"old":  c.Old,
		"new":  c.New,
	})
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("filter returned %T, want bool", res)
	}
	return b, nil
}

// Wrap returns a ChangeFunc forwarding to fn only the changes f
// matches. Changes whose evaluation errors are dropped.
func (f *Filter) Wrap(fn tracked.ChangeFunc) tracked.ChangeFunc {
	return func(c tracked.Change) {
		ok, err := f.Match(c)
		if err != nil || !ok {
			return
		}
		fn(c)
	}
}
