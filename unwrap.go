package tracked

// Unwrap strips every observer layer from v and returns a plain, fully
// detached copy: scalars come back verbatim, tables (tracked or not)
// are rebuilt recursively so the result shares no storage with any
// live view or with the input. This makes Unwrap usable as a generic
// structural clone as well.
//
// Unwrap recurses structurally and does not detect cycles; a cyclic
// table does not terminate.
func Unwrap(v any) any {
	var src *Table
	switch x := v.(type) {
	case *Tracked:
		src = x.raw
	case *Table:
		src = x
	default:
		return v
	}
	out := New()
	for k, ev := range src.entries {
		out.entries[k] = Unwrap(ev)
	}
	return out
}
