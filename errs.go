package tracked

import "errors"

var (
	ErrNotTable    = errors.New("not a table")
	ErrNilCallback = errors.New("nil change callback")
	ErrNilValue    = errors.New("nil value")
	ErrNotFound    = errors.New("value not found")
	ErrRange       = errors.New("position out of range")
	ErrEmptyPath   = errors.New("empty path")
	ErrBadPath     = errors.New("bad path")
	ErrFrozen      = errors.New("table is frozen")
)
