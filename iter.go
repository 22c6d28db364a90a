package tracked

import "iter"

// All iterates every key of the underlying storage in map order.
// Values are produced by re-indexing through the view, so nested
// tables arrive as correctly pathed live views, never as raw storage.
func (t *Tracked) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for k := range t.raw.entries {
			if !yield(k, t.Get(k)) {
				return
			}
		}
	}
}

// Indexed iterates the indexed region sequentially from 1, stopping
// at the first absent index. Values are re-indexed through the view
// like All.
func (t *Tracked) Indexed() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i := 1; ; i++ {
			if t.raw.Get(i) == nil {
				return
			}
			if !yield(i, t.Get(i)) {
				return
			}
		}
	}
}
