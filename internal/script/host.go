package script

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	lua "github.com/yuin/gopher-lua"

	"github.com/skywatch-cli/skywatch/internal/command"
	"github.com/skywatch-cli/skywatch/internal/dispatch/handler"
	"github.com/skywatch-cli/skywatch/internal/route"
)

// Host owns one script's Lua state and exposes its functions as dispatch
// handlers and route targets.
type Host struct {
	id     uuid.UUID
	name   string
	state  *State
	logger *log.Logger
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithHostLogger sets the logger used for script diagnostics.
func WithHostLogger(logger *log.Logger) HostOption {
	return func(h *Host) {
		h.logger = logger
	}
}

// NewHost creates a host with a fresh sandboxed state.
func NewHost(name string, opts ...HostOption) *Host {
	h := &Host{
		id:     uuid.New(),
		name:   name,
		state:  NewState(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ID returns the host's unique identity.
func (h *Host) ID() uuid.UUID {
	return h.id
}

// Name returns the script name the host was created with.
func (h *Host) Name() string {
	return h.name
}

// LoadFile executes a Lua source file, defining its functions in the host.
func (h *Host) LoadFile(path string) error {
	if err := h.state.DoFile(path); err != nil {
		return fmt.Errorf("script %s: %w", h.name, err)
	}
	return nil
}

// LoadSource executes Lua source, defining its functions in the host.
func (h *Host) LoadSource(source string) error {
	if err := h.state.DoString(source); err != nil {
		return fmt.Errorf("script %s: %w", h.name, err)
	}
	return nil
}

// HasFunction returns true if the script defines a global function fn.
func (h *Host) HasFunction(fn string) bool {
	_, ok := h.state.Global(fn).(*lua.LFunction)
	return ok
}

// Handler exposes the named script function as a dispatch handler. The
// function receives the argument bundle as a table and its first return
// value becomes the result value.
func (h *Host) Handler(fn string) handler.Func {
	return func(args command.Args) handler.Result {
		ret, err := h.state.CallWith(fn, func(L *lua.LState) lua.LValue {
			return argsToTable(L, args)
		})
		if err != nil {
			return handler.Error(fmt.Errorf("script %s: %w", h.name, err))
		}
		if ret == lua.LNil {
			return handler.OK()
		}
		return handler.OKWithValue(toGoValue(ret))
	}
}

// RouteFunc exposes the named script function as a route target. Routed
// invocations carry no arguments; errors are logged with the host identity.
func (h *Host) RouteFunc(fn string) route.Func {
	return func() {
		if _, err := h.state.Call(fn); err != nil {
			if h.logger != nil && !errors.Is(err, ErrStateClosed) {
				h.logger.Error("script route failed",
					"script", h.name,
					"host", h.id,
					"function", fn,
					"err", err,
				)
			}
		}
	}
}

// Close releases the host's Lua state.
func (h *Host) Close() {
	h.state.Close()
}
