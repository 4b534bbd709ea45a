// Package script hosts Lua-defined handlers for the dispatch layer.
package script

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// State wraps a sandboxed gopher-lua state.
//
// gopher-lua's LState is not goroutine-safe. The mutex serializes access
// from Go code; Lua execution itself is single-threaded.
type State struct {
	L *lua.LState

	mu     sync.Mutex
	closed bool
}

// NewState creates a new sandboxed Lua state. Only the base, table, string
// and math libraries are opened; io, os, debug and package stay closed, and
// the load family of functions is removed.
func NewState() *State {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})

	openSafeLibraries(L)
	removeUnsafeGlobals(L)

	return &State{L: L}
}

// openSafeLibraries opens only safe Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// removeUnsafeGlobals strips functions that could bypass the sandbox.
func removeUnsafeGlobals(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// DoFile executes a Lua source file in the state.
func (s *State) DoFile(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	if err := s.L.DoFile(path); err != nil {
		return fmt.Errorf("executing %s: %w", path, err)
	}
	return nil
}

// DoString executes Lua source in the state.
func (s *State) DoString(source string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	if err := s.L.DoString(source); err != nil {
		return fmt.Errorf("executing script source: %w", err)
	}
	return nil
}

// Global returns the named global value.
func (s *State) Global(name string) lua.LValue {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return lua.LNil
	}
	return s.L.GetGlobal(name)
}

// Call invokes a global Lua function with the given arguments and returns
// its first return value.
func (s *State) Call(fn string, args ...lua.LValue) (lua.LValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.call(fn, args...)
}

// CallWith invokes a global Lua function with a single argument built
// against the state under the same lock as the call itself.
func (s *State) CallWith(fn string, build func(L *lua.LState) lua.LValue) (lua.LValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return lua.LNil, ErrStateClosed
	}
	return s.call(fn, build(s.L))
}

// call performs the invocation; the caller holds the lock.
func (s *State) call(fn string, args ...lua.LValue) (lua.LValue, error) {
	if s.closed {
		return lua.LNil, ErrStateClosed
	}

	gv := s.L.GetGlobal(fn)
	if _, ok := gv.(*lua.LFunction); !ok {
		return lua.LNil, fmt.Errorf("%w: %s", ErrFunctionNotDefined, fn)
	}

	if err := s.L.CallByParam(lua.P{
		Fn:      gv,
		NRet:    1,
		Protect: true,
	}, args...); err != nil {
		return lua.LNil, fmt.Errorf("calling %s: %w", fn, err)
	}

	ret := s.L.Get(-1)
	s.L.Pop(1)
	return ret, nil
}

// Close releases the Lua state. Further calls on the state fail with
// ErrStateClosed.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}
