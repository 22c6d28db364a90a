package tracked

import (
	"fmt"

	"github.com/signadot/tracked/debug"
)

// DeepUpdate assigns v at path below dst, creating intermediate tables
// as needed and overwriting any non-table value met along the way with
// a fresh table. dst may be a live view or a raw table; either way the
// mutation is raw and structural and deliberately fires no change
// notifications. It is the bulk-edit channel next to the per-key
// observed writes, for callers that do not want granular diffing.
//
// A nil v removes the final key.
func DeepUpdate(dst any, path Path, v any) error {
	var cur *Table
	switch x := dst.(type) {
	case *Tracked:
		cur = x.raw
	case *Table:
		cur = x
	default:
		return fmt.Errorf("%w: cannot update %T", ErrNotTable, dst)
	}
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if debug.Update() {
		debug.Logf("tracked: deep update at %s\n", path)
	}
	for _, k := range path[:len(path)-1] {
		next, ok := cur.Get(k).(*Table)
		if !ok {
			next = New()
			cur.Set(k, next)
		}
		cur = next
	}
	cur.Set(path[len(path)-1], Unwrap(v))
	return nil
}
