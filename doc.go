// Package tracked provides transparent, recursive change observation
// over nested mutable tables. Track wraps a Table so that nested reads
// come back as live, correctly pathed views and every genuine write
// fires a single synchronous notification carrying the exact path, old
// value and new value.
//
// The package is single threaded by design. Notifications run on the
// writing call stack, there is no internal locking, and hosts with
// parallel writers must serialize access themselves.
package tracked
