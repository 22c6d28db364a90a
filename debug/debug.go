// Package debug provides env-gated debug logging for the tracked
// packages. Gates are read once at startup from TRACKED_DEBUG_*
// variables.
package debug

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

type debug struct {
	Change bool `env:"TRACKED_DEBUG_CHANGE"`
	Array  bool `env:"TRACKED_DEBUG_ARRAY"`
	Update bool `env:"TRACKED_DEBUG_UPDATE"`
	Lua    bool `env:"TRACKED_DEBUG_LUA"`
}

var d debug

func init() {
	_ = env.Parse(&d)
}

func Change() bool {
	return d.Change
}
func Array() bool {
	return d.Array
}
func Update() bool {
	return d.Update
}
func Lua() bool {
	return d.Lua
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
