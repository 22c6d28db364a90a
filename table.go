package tracked

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Table is the raw structure every view observes: a mutable container
// keyed by arbitrary comparable values. Integer keys starting at 1
// form the indexed region the array operations work on.
//
// A nil value means "absent": setting a key to nil removes it.
type Table struct {
	entries map[any]any
	frozen  bool
}

func New() *Table {
	return &Table{entries: map[any]any{}}
}

// FromMap builds a Table from a string-keyed map, converting nested
// maps and slices recursively.
func FromMap(m map[string]any) *Table {
	t := New()
	for k, v := range m {
		t.Set(k, fromAnyValue(v))
	}
	return t
}

// FromSlice builds a Table whose indexed region holds vs at keys
// 1..len(vs).
func FromSlice(vs []any) *Table {
	t := New()
	for i, v := range vs {
		t.Set(i+1, fromAnyValue(v))
	}
	return t
}

// FromAny converts a decoded document (maps, slices, scalars nested in
// them) into a Table. Scalar input is an error: the root of a tracked
// structure must be a container.
func FromAny(v any) (*Table, error) {
	switch x := v.(type) {
	case *Table:
		return x, nil
	case map[string]any:
		return FromMap(x), nil
	case map[any]any:
		t := New()
		for k, ev := range x {
			t.Set(Norm(k), fromAnyValue(ev))
		}
		return t, nil
	case []any:
		return FromSlice(x), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotTable, v)
	}
}

func fromAnyValue(v any) any {
	switch v.(type) {
	case map[string]any, map[any]any, []any:
		t, _ := FromAny(v)
		return t
	default:
		return Norm(v)
	}
}

// Norm maps integral numeric values, the usual product of JSON, YAML
// and Lua decoding, onto int, so that keys land in the indexed region
// and identity comparison holds across codecs.
func Norm(k any) any {
	switch n := k.(type) {
	case float64:
		if n == float64(int(n)) {
			return int(n)
		}
	case int64:
		return int(n)
	case uint64:
		return int(n)
	}
	return k
}

// Get returns the value stored at key, or nil when absent.
func (t *Table) Get(key any) any {
	return t.entries[key]
}

// Set stores val at key, removing the key when val is nil. Set panics
// with ErrFrozen on a frozen table and on a nil key.
func (t *Table) Set(key, val any) {
	if t.frozen {
		panic(ErrFrozen)
	}
	if key == nil {
		panic("tracked: nil table key")
	}
	if val == nil {
		delete(t.entries, key)
		return
	}
	t.entries[key] = val
}

// Len is the total number of keys, not the length of the contiguous
// indexed prefix. Insert and Remove depend on this exact count for
// their shifting bounds.
func (t *Table) Len() int {
	return len(t.entries)
}

// Frozen reports whether the table has been deep frozen.
func (t *Table) Frozen() bool {
	return t.frozen
}

// Keys returns the keys in unspecified order.
func (t *Table) Keys() []any {
	return slices.Collect(maps.Keys(t.entries))
}

// All iterates the table's own entries directly, without any observer
// wrapping. Observed iteration lives on Tracked.
func (t *Table) All() iter.Seq2[any, any] {
	return maps.All(t.entries)
}

// ToAny converts the table to plain Go values for codecs: a []any when
// the keys are exactly 1..Len, otherwise a map[string]any with
// stringified keys.
func (t *Table) ToAny() any {
	if vs, ok := t.indexedSlice(); ok {
		return vs
	}
	m := make(map[string]any, len(t.entries))
	for k, v := range t.entries {
		m[keyString(k)] = toAnyValue(v)
	}
	return m
}

func (t *Table) indexedSlice() ([]any, bool) {
	n := len(t.entries)
	if n == 0 {
		return nil, false
	}
	vs := make([]any, n)
	for i := 1; i <= n; i++ {
		v, ok := t.entries[i]
		if !ok {
			return nil, false
		}
		vs[i-1] = toAnyValue(v)
	}
	return vs, true
}

func toAnyValue(v any) any {
	if sub, ok := v.(*Table); ok {
		return sub.ToAny()
	}
	return v
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
