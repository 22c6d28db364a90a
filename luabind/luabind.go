// Package luabind exposes tracked tables to embedded Lua. A *Tracked
// pushed into a state is a userdata whose index, newindex, len and
// tostring metamethods route through the live view, so Lua-side
// mutation fires the Go-side change callback. Open registers a
// "tracked" module carrying the array operations and the custom
// iteration protocols, which must be used instead of the builtin
// pairs/ipairs over a tracked value.
package luabind

import (
	"errors"
	"math"

	"github.com/Shopify/go-lua"

	"github.com/signadot/tracked"
	"github.com/signadot/tracked/debug"
)

const typeName = "tracked.table"

// Push pushes t as a tracked userdata.
func Push(l *lua.State, t *tracked.Tracked) {
	registerMetaTable(l)
	l.PushUserData(t)
	lua.SetMetaTableNamed(l, typeName)
}

// Open registers the tracked module as the global "tracked".
func Open(l *lua.State) {
	registerMetaTable(l)
	l.NewTable()
	lua.SetFunctions(l, moduleFuncs, 0)
	l.SetGlobal("tracked")
}

// ToTable converts the Lua table at index into a fresh Table,
// recursively. Integral number keys become Go ints so indexed regions
// survive the conversion.
func ToTable(l *lua.State, index int) (*tracked.Table, error) {
	if l.TypeOf(index) != lua.TypeTable {
		return nil, tracked.ErrNotTable
	}
	return toTable(l, index), nil
}

func registerMetaTable(l *lua.State) {
	if !lua.NewMetaTable(l, typeName) {
		l.Pop(1)
		return
	}
	lua.SetFunctions(l, metaMethods, 0)
	l.Pop(1)
}

var metaMethods []lua.RegistryFunction

func init() {
	metaMethods = []lua.RegistryFunction{
		{Name: "__index", Function: metaIndex},
		{Name: "__newindex", Function: metaNewIndex},
		{Name: "__len", Function: metaLen},
		{Name: "__tostring", Function: metaToString},
	}
}

var moduleFuncs = []lua.RegistryFunction{
	{Name: "insert", Function: insertFn},
	{Name: "remove", Function: removeFn},
	{Name: "find", Function: findFn},
	{Name: "len", Function: lenFn},
	{Name: "clear", Function: clearFn},
	{Name: "pairs", Function: pairsFn},
	{Name: "ipairs", Function: ipairsFn},
	{Name: "raw", Function: rawFn},
	{Name: "update", Function: updateFn},
}

func checkTracked(l *lua.State) *tracked.Tracked {
	ud := lua.CheckUserData(l, 1, typeName)
	if t, ok := ud.(*tracked.Tracked); ok && t != nil {
		return t
	}
	lua.ArgumentError(l, 1, "tracked table expected")
	return nil
}

func metaIndex(l *lua.State) int {
	t := checkTracked(l)
	k := toGo(l, 2)
	if k == nil {
		l.PushNil()
		return 1
	}
	pushValue(l, t.Get(k))
	return 1
}

func metaNewIndex(l *lua.State) int {
	t := checkTracked(l)
	k := toGo(l, 2)
	if k == nil {
		lua.ArgumentError(l, 2, "nil or unsupported key")
	}
	if debug.Lua() {
		debug.Logf("tracked: lua write key %v\n", k)
	}
	t.Set(k, toGo(l, 3))
	return 0
}

func metaLen(l *lua.State) int {
	t := checkTracked(l)
	l.PushInteger(t.Len())
	return 1
}

func metaToString(l *lua.State) int {
	t := checkTracked(l)
	l.PushString(t.String())
	return 1
}

func insertFn(l *lua.State) int {
	t := checkTracked(l)
	var err error
	if l.IsNoneOrNil(3) {
		err = t.Append(toGo(l, 2))
	} else {
		err = t.Insert(lua.CheckInteger(l, 2), toGo(l, 3))
	}
	if err != nil {
		lua.Errorf(l, "%s", err.Error())
	}
	return 0
}

func removeFn(l *lua.State) int {
	t := checkTracked(l)
	pos := lua.OptInteger(l, 2, t.Len())
	v, err := t.Remove(pos)
	if err != nil {
		lua.Errorf(l, "%s", err.Error())
	}
	pushValue(l, v)
	return 1
}

func findFn(l *lua.State) int {
	t := checkTracked(l)
	idx, err := t.Find(toGo(l, 2))
	switch {
	case errors.Is(err, tracked.ErrNotFound):
		l.PushNil()
	case err != nil:
		lua.Errorf(l, "%s", err.Error())
	default:
		l.PushInteger(idx)
	}
	return 1
}

func lenFn(l *lua.State) int {
	t := checkTracked(l)
	l.PushInteger(t.Len())
	return 1
}

func clearFn(l *lua.State) int {
	t := checkTracked(l)
	t.Clear()
	return 0
}

// pairsFn returns an iterator closure over the unordered protocol:
// keys are snapshotted, values re-read through the live view on each
// step.
func pairsFn(l *lua.State) int {
	t := checkTracked(l)
	var keys []any
	for k := range t.All() {
		keys = append(keys, k)
	}
	i := 0
	l.PushGoFunction(func(l *lua.State) int {
		for i < len(keys) {
			k := keys[i]
			i++
			v := t.Get(k)
			if v == nil {
				continue
			}
			pushKey(l, k)
			pushValue(l, v)
			return 2
		}
		l.PushNil()
		return 1
	})
	return 1
}

// ipairsFn returns an iterator closure over the sequential protocol,
// stopping at the first absent index.
func ipairsFn(l *lua.State) int {
	t := checkTracked(l)
	i := 0
	l.PushGoFunction(func(l *lua.State) int {
		i++
		v := t.Get(i)
		if v == nil {
			l.PushNil()
			return 1
		}
		l.PushInteger(i)
		pushValue(l, v)
		return 2
	})
	return 1
}

func rawFn(l *lua.State) int {
	t := checkTracked(l)
	pushTable(l, t.Raw())
	return 1
}

func updateFn(l *lua.State) int {
	t := checkTracked(l)
	lua.CheckType(l, 2, lua.TypeTable)
	pathTbl := toTable(l, 2)
	path := tracked.Path{}
	for i := 1; i <= pathTbl.Len(); i++ {
		k := pathTbl.Get(i)
		if k == nil {
			lua.ArgumentError(l, 2, "path must be a sequence")
		}
		path = append(path, k)
	}
	if err := tracked.DeepUpdate(t, path, toGo(l, 3)); err != nil {
		lua.Errorf(l, "%s", err.Error())
	}
	return 0
}

func toGo(l *lua.State, index int) any {
	switch l.TypeOf(index) {
	case lua.TypeString:
		s, _ := l.ToString(index)
		return s
	case lua.TypeNumber:
		n, _ := l.ToNumber(index)
		if n == math.Trunc(n) {
			return int(n)
		}
		return n
	case lua.TypeBoolean:
		return l.ToBoolean(index)
	case lua.TypeTable:
		return toTable(l, index)
	case lua.TypeUserData:
		return l.ToUserData(index)
	default:
		return nil
	}
}

func toTable(l *lua.State, index int) *tracked.Table {
	t := tracked.New()
	index = l.AbsIndex(index)
	l.PushNil()
	for l.Next(index) {
		k := toGo(l, -2)
		v := toGo(l, -1)
		if k != nil && v != nil {
			t.Set(tracked.Norm(k), v)
		}
		l.Pop(1)
	}
	return t
}

func pushValue(l *lua.State, v any) {
	switch x := v.(type) {
	case nil:
		l.PushNil()
	case *tracked.Tracked:
		Push(l, x)
	case *tracked.Table:
		pushTable(l, x)
	case string:
		l.PushString(x)
	case int:
		l.PushInteger(x)
	case float64:
		l.PushNumber(x)
	case bool:
		l.PushBoolean(x)
	default:
		l.PushUserData(x)
	}
}

func pushKey(l *lua.State, k any) {
	switch x := k.(type) {
	case string:
		l.PushString(x)
	case int:
		l.PushInteger(x)
	case float64:
		l.PushNumber(x)
	case bool:
		l.PushBoolean(x)
	default:
		l.PushUserData(x)
	}
}

func pushTable(l *lua.State, t *tracked.Table) {
	l.NewTable()
	for k, v := range t.All() {
		pushKey(l, k)
		pushValue(l, v)
		l.SetTable(-3)
	}
}
