package tracked

import (
	"fmt"

	"github.com/signadot/tracked/debug"
)

// Len returns the total key count of the underlying storage, not the
// length of the contiguous indexed prefix. Insert and Remove use this
// count as their shifting bound, so it must stay the global count.
func (t *Tracked) Len() int {
	return t.raw.Len()
}

// Find scans the indexed region from 1 upward and returns the first
// index holding a value identical to v. A nil v is an error; an
// absent v reports ErrNotFound.
func (t *Tracked) Find(v any) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: cannot search for nil", ErrNilValue)
	}
	for i := 1; i <= t.raw.Len(); i++ {
		if identical(t.raw.Get(i), v) {
			return i, nil
		}
	}
	return 0, ErrNotFound
}

// Clear removes every key through the observed write path, so each
// removal fires a change notification with a nil new value.
func (t *Tracked) Clear() {
	for _, k := range t.raw.Keys() {
		t.Set(k, nil)
	}
}

// Append inserts v after the last slot, at position Len+1.
func (t *Tracked) Append(v any) error {
	return t.Insert(t.raw.Len()+1, v)
}

// Insert places v at pos within [1, Len+1], shifting every element at
// index >= pos one slot up, top index first so unshifted data is
// never overwritten. Each shifted slot is written through the view
// and notifies individually; a callback firing mid-shift observes the
// transient half-shifted state.
func (t *Tracked) Insert(pos int, v any) error {
	n := t.raw.Len()
	if pos < 1 || pos > n+1 {
		return fmt.Errorf("%w: insert at %d with length %d", ErrRange, pos, n)
	}
	if debug.Array() {
		debug.Logf("tracked: insert %d at %s\n", pos, t.path)
	}
	for i := n; i >= pos; i-- {
		t.Set(i+1, t.raw.Get(i))
	}
	t.Set(pos, v)
	return nil
}

// Pop removes and returns the value at the last slot, position Len.
func (t *Tracked) Pop() (any, error) {
	return t.Remove(t.raw.Len())
}

// Remove takes out the value at pos within [1, Len], shifts every
// subsequent element down by one, lowest index first, clears the now
// duplicated final slot and returns the captured value. The same
// mid-shift visibility caveat as Insert applies.
func (t *Tracked) Remove(pos int) (any, error) {
	n := t.raw.Len()
	if pos < 1 || pos > n {
		return nil, fmt.Errorf("%w: remove at %d with length %d", ErrRange, pos, n)
	}
	if debug.Array() {
		debug.Logf("tracked: remove %d at %s\n", pos, t.path)
	}
	v := t.raw.Get(pos)
	for i := pos; i < n; i++ {
		t.Set(i, t.raw.Get(i+1))
	}
	t.Set(n, nil)
	return v, nil
}
