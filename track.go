package tracked

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/signadot/tracked/debug"
)

// Tracked is a live observer over a Table. Reads of nested tables come
// back as further Tracked views with extended paths; writes are diffed
// against the stored value, applied to the raw table and reported
// through the callback.
//
// Views are allocated per read and never cached: two Gets of the same
// key return two distinct views over the same underlying storage,
// both reporting through the same callback.
type Tracked struct {
	raw      *Table
	path     Path
	onChange ChangeFunc
}

// Track wraps a Table for observation. Passing an existing *Tracked
// returns it unchanged, so re-tracking never stacks observers.
func Track(v any, fn ChangeFunc) (*Tracked, error) {
	switch x := v.(type) {
	case *Tracked:
		return x, nil
	case *Table:
		if x == nil {
			return nil, fmt.Errorf("%w: nil table", ErrNotTable)
		}
		if fn == nil {
			return nil, ErrNilCallback
		}
		return &Tracked{raw: x, path: Path{}, onChange: fn}, nil
	default:
		return nil, fmt.Errorf("%w: cannot track %T", ErrNotTable, v)
	}
}

func (t *Tracked) child(raw *Table, key any) *Tracked {
	return &Tracked{raw: raw, path: t.path.Extend(key), onChange: t.onChange}
}

// Get returns the value at key: scalars verbatim, nested tables as a
// fresh child view with an extended path. Reads never mutate the
// underlying table and never notify.
func (t *Tracked) Get(key any) any {
	v := t.raw.Get(key)
	if sub, ok := v.(*Table); ok {
		return t.child(sub, key)
	}
	return v
}

// Set stores Unwrap(value) at key and fires the change callback before
// returning. Writing a value identical to the stored one is a no-op:
// no mutation, no notification. Identity means pointer identity for
// tables and == for scalars, not structural equality. A nil value
// removes the key.
func (t *Tracked) Set(key, value any) {
	old := t.raw.Get(key)
	raw := Unwrap(value)
	if identical(old, raw) {
		return
	}
	t.raw.Set(key, raw)
	p := t.path.Extend(key)
	if debug.Change() {
		debug.Logf("tracked: %s: %v -> %v\n", p, old, raw)
	}
	t.onChange(Change{Path: p, Old: old, New: raw, Container: t.raw})
}

// Raw returns an independent, recursively frozen snapshot of the
// current underlying data. The snapshot neither affects nor is
// affected by later tracked writes; mutating it panics.
func (t *Tracked) Raw() *Table {
	return Freeze(DeepCopy(t.raw))
}

// Path returns a copy of the view's path from the tracked root.
func (t *Tracked) Path() Path {
	return slices.Clone(t.path)
}

// String renders an opaque placeholder. The underlying data is never
// exposed through formatting.
func (t *Tracked) String() string {
	return "tracked(" + t.path.String() + ")"
}

// identical is the write-suppression test: pointer identity for
// tables, == for comparable scalars. A structurally equal but distinct
// table is not identical, so such a write still fires.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if at, ok := a.(*Table); ok {
		bt, ok := b.(*Table)
		return ok && at == bt
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
