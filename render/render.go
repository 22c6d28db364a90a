// Package render formats change notifications for terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/tracked"
)

// Renderer produces one line per change. With Color set, paths and
// diffs use terminal colors.
type Renderer struct {
	Color bool
}

// Change renders c as "<path>: old -> new". A string-to-string
// transition renders an inline character diff instead of the plain
// old/new pair.
func (r *Renderer) Change(c tracked.Change) string {
	path := c.Path.String()
	if r.Color {
		path = color.CyanString("%s", path)
	}
	if from, ok := c.Old.(string); ok {
		if to, ok := c.New.(string); ok {
			return fmt.Sprintf("%s: %s", path, r.stringDiff(from, to))
		}
	}
	return fmt.Sprintf("%s: %s -> %s", path, r.value(c.Old), r.value(c.New))
}

func (r *Renderer) value(v any) string {
	switch x := v.(type) {
	case nil:
		if r.Color {
			return color.HiBlackString("absent")
		}
		return "absent"
	case *tracked.Table:
		return fmt.Sprintf("table(%d)", x.Len())
	case string:
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprint(v)
	}
}

func (r *Renderer) stringDiff(from, to string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			if r.Color {
				sb.WriteString(color.RedString("%s", d.Text))
			} else {
				sb.WriteString("[-" + d.Text + "-]")
			}
		case diffpatch.DiffInsert:
			if r.Color {
				sb.WriteString(color.GreenString("%s", d.Text))
			} else {
				sb.WriteString("[+" + d.Text + "+]")
			}
		case diffpatch.DiffEqual:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
