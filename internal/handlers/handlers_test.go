package handlers_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/skywatch-cli/skywatch/internal/command"
	"github.com/skywatch-cli/skywatch/internal/dispatch"
	"github.com/skywatch-cli/skywatch/internal/handlers"
)

func TestSetRegistersEveryPair(t *testing.T) {
	var out bytes.Buffer
	d := dispatch.New(dispatch.DefaultConfig().WithLogger(log.New(io.Discard)))
	handlers.NewSet(&out).Register(d)

	pairs := []struct {
		action   command.Action
		resource command.Resource
	}{
		{command.ActionAdd, command.ResourceNumbers},
		{command.ActionSubtract, command.ResourceNumbers},
		{command.ActionMultiply, command.ResourceNumbers},
		{command.ActionDivide, command.ResourceNumbers},
		{command.ActionGet, command.ResourceCamera},
		{command.ActionRotate, command.ResourceCamera},
		{command.ActionGet, command.ResourceStars},
		{command.ActionSearch, command.ResourceStars},
		{command.ActionGet, command.ResourceMoon},
	}

	for _, p := range pairs {
		if !d.Has(p.action, p.resource) {
			t.Errorf("pair %s %s not registered", p.action, p.resource)
		}
	}
	if d.Count() != len(pairs) {
		t.Errorf("Count = %d, want %d", d.Count(), len(pairs))
	}

	// End to end through the dispatcher.
	res := d.Execute(command.New(command.ActionAdd, command.ResourceNumbers, "2", "3").WithSilent(true))
	if !res.IsOK() || res.Value != 5 {
		t.Errorf("dispatched add = %+v, want 5", res)
	}
}

func TestNamedCoversEveryBuiltin(t *testing.T) {
	var out bytes.Buffer
	named := handlers.NewSet(&out).Named()

	for _, name := range []string{
		"numbers.add", "numbers.subtract", "numbers.multiply", "numbers.divide",
		"camera.get", "camera.rotate",
		"stars.get", "stars.search",
		"moon.get",
	} {
		h, ok := named[name]
		if !ok {
			t.Errorf("built-in %q missing", name)
			continue
		}
		if h == nil {
			t.Errorf("built-in %q is nil", name)
		}
	}
}

func TestArgsFor(t *testing.T) {
	args := handlers.ArgsFor("camera.rotate", true)
	if args.Action != command.ActionRotate || args.Resource != command.ResourceCamera {
		t.Errorf("args = %+v", args)
	}
	if !args.Silent {
		t.Error("silent flag not applied")
	}
	if len(args.Values) != 0 {
		t.Errorf("Values = %v, want none", args.Values)
	}

	// Unknown names yield a zero bundle rather than panicking.
	zero := handlers.ArgsFor("no.such", false)
	if zero.Action != "" || zero.Resource != "" {
		t.Errorf("unknown name yielded %+v", zero)
	}
}
