package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/skywatch-cli/skywatch/internal/command"
)

// argsToTable converts a command bundle into a Lua table. Optional fields
// are present in the table only when the caller provided them, so Lua code
// can distinguish "absent" from empty or zero the same way Go handlers do.
func argsToTable(L *lua.LState, args command.Args) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("action", lua.LString(args.Action))
	t.RawSetString("resource", lua.LString(args.Resource))

	values := L.NewTable()
	for _, v := range args.Values {
		values.Append(lua.LString(v))
	}
	t.RawSetString("values", values)

	if args.Data != nil {
		t.RawSetString("data", lua.LString(*args.Data))
	}
	if args.Page != nil {
		t.RawSetString("page", lua.LNumber(*args.Page))
	}
	if args.Skip != nil {
		t.RawSetString("skip", lua.LNumber(*args.Skip))
	}
	if args.Verbose != nil {
		t.RawSetString("verbose", lua.LBool(*args.Verbose))
	}
	if args.Output != nil {
		t.RawSetString("output", lua.LString(*args.Output))
	}
	t.RawSetString("silent", lua.LBool(args.Silent))

	return t
}

// toGoValue converts a Lua return value to a Go value. Tables convert to
// []any when they are contiguous arrays and map[string]any otherwise;
// functions and userdata convert to nil.
func toGoValue(lv lua.LValue) any {
	switch v := lv.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case lua.LString:
		return string(v)
	case *lua.LTable:
		return tableToGo(v)
	default:
		return nil
	}
}

// tableToGo converts a Lua table to a slice or map.
func tableToGo(t *lua.LTable) any {
	n := t.Len()
	if n > 0 {
		arr := make([]any, 0, n)
		for i := 1; i <= n; i++ {
			arr = append(arr, toGoValue(t.RawGetInt(i)))
		}
		return arr
	}

	m := make(map[string]any)
	t.ForEach(func(k, v lua.LValue) {
		m[k.String()] = toGoValue(v)
	})
	return m
}
