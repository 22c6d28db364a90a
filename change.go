package tracked

// Change describes one observed write: the path of the mutated key
// from the tracked root, the raw value previously stored, the raw
// value now stored (nil when the key was removed) and the raw
// container directly holding the key.
type Change struct {
	Path      Path
	Old       any
	New       any
	Container *Table
}

// ChangeFunc receives change notifications. It runs synchronously on
// the writing call stack before the write returns, so a callback may
// itself write to the tracked structure and recurse.
type ChangeFunc func(Change)
