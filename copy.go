package tracked

// DeepCopy returns a structural clone of t: a new table whose nested
// tables are themselves clones. No container is shared between t and
// the result. Cycles are not detected.
func DeepCopy(t *Table) *Table {
	out := New()
	for k, v := range t.entries {
		if sub, ok := v.(*Table); ok {
			out.entries[k] = DeepCopy(sub)
			continue
		}
		out.entries[k] = v
	}
	return out
}

// Freeze makes t and every nested table immutable in place and
// returns t. Apply it to an independent copy only: freezing live
// tracked storage would leak immutability into the tracked root.
// Cycles are not detected.
func Freeze(t *Table) *Table {
	t.frozen = true
	for _, v := range t.entries {
		if sub, ok := v.(*Table); ok {
			Freeze(sub)
		}
	}
	return t
}
