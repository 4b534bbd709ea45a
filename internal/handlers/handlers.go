package handlers

import (
	"io"

	"github.com/skywatch-cli/skywatch/internal/command"
	"github.com/skywatch-cli/skywatch/internal/dispatch"
	"github.com/skywatch-cli/skywatch/internal/dispatch/handler"
)

// Set holds the built-in handlers for one front end.
type Set struct {
	Numbers *NumbersHandler
	Camera  *CameraHandler
	Stars   *StarsHandler
	Moon    *MoonHandler
}

// NewSet creates the built-in handlers writing to out.
func NewSet(out io.Writer) *Set {
	return &Set{
		Numbers: NewNumbersHandler(out),
		Camera:  NewCameraHandler(out),
		Stars:   NewStarsHandler(out),
		Moon:    NewMoonHandler(out),
	}
}

// Register wires every built-in pair into the dispatcher.
func (s *Set) Register(d *dispatch.Dispatcher) {
	d.RegisterFunc(command.ActionAdd, command.ResourceNumbers, s.Numbers.Add)
	d.RegisterFunc(command.ActionSubtract, command.ResourceNumbers, s.Numbers.Subtract)
	d.RegisterFunc(command.ActionMultiply, command.ResourceNumbers, s.Numbers.Multiply)
	d.RegisterFunc(command.ActionDivide, command.ResourceNumbers, s.Numbers.Divide)

	d.RegisterFunc(command.ActionGet, command.ResourceCamera, s.Camera.Get)
	d.RegisterFunc(command.ActionRotate, command.ResourceCamera, s.Camera.Rotate)

	d.RegisterFunc(command.ActionGet, command.ResourceStars, s.Stars.Get)
	d.RegisterFunc(command.ActionSearch, command.ResourceStars, s.Stars.Search)

	d.RegisterFunc(command.ActionGet, command.ResourceMoon, s.Moon.Get)
}

// Named returns the built-ins by their route-table target names.
func (s *Set) Named() map[string]handler.Handler {
	return map[string]handler.Handler{
		"numbers.add":      handler.Func(s.Numbers.Add),
		"numbers.subtract": handler.Func(s.Numbers.Subtract),
		"numbers.multiply": handler.Func(s.Numbers.Multiply),
		"numbers.divide":   handler.Func(s.Numbers.Divide),
		"camera.get":       handler.Func(s.Camera.Get),
		"camera.rotate":    handler.Func(s.Camera.Rotate),
		"stars.get":        handler.Func(s.Stars.Get),
		"stars.search":     handler.Func(s.Stars.Search),
		"moon.get":         handler.Func(s.Moon.Get),
	}
}

// ArgsFor builds the zero-operand argument bundle a named built-in receives
// when invoked through the path registry.
func ArgsFor(name string, silent bool) command.Args {
	pairs := map[string]command.Args{
		"numbers.add":      command.New(command.ActionAdd, command.ResourceNumbers),
		"numbers.subtract": command.New(command.ActionSubtract, command.ResourceNumbers),
		"numbers.multiply": command.New(command.ActionMultiply, command.ResourceNumbers),
		"numbers.divide":   command.New(command.ActionDivide, command.ResourceNumbers),
		"camera.get":       command.New(command.ActionGet, command.ResourceCamera),
		"camera.rotate":    command.New(command.ActionRotate, command.ResourceCamera),
		"stars.get":        command.New(command.ActionGet, command.ResourceStars),
		"stars.search":     command.New(command.ActionSearch, command.ResourceStars),
		"moon.get":         command.New(command.ActionGet, command.ResourceMoon),
	}
	return pairs[name].WithSilent(silent)
}
