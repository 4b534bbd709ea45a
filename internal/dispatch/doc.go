// Package dispatch routes parsed commands to handlers keyed by their
// action/resource pair.
//
// # Architecture
//
// The dispatcher holds a two-level mapping: action to resource to handler.
// At most one handler is registered per pair; re-registering the same pair
// silently replaces the previous handler (last write wins). The inner map is
// created lazily on the first registration for an action.
//
// # Execution
//
// Execute looks up the handler for the args' pair and invokes it with the
// full argument bundle. A pair with no handler is a soft failure: the
// dispatcher logs a diagnostic naming the pair and returns a result with
// StatusNotFound. Handlers never see a dispatch they were not registered
// for, and callers never see a Go error or a panic from Execute (panic
// recovery is on by default).
//
// # Handlers
//
// Handlers implement the handler.Handler interface:
//
//	type Handler interface {
//	    Handle(args command.Args) Result
//	}
//
// Plain functions adapt via handler.Func.
//
// # Usage
//
//	d := dispatch.NewWithDefaults()
//	d.RegisterFunc(command.ActionAdd, command.ResourceNumbers, addNumbers)
//
//	result := d.Execute(command.New(command.ActionAdd, command.ResourceNumbers, "2", "3"))
//	if result.HasValue() {
//	    fmt.Println(result.Value)
//	}
//
// # Concurrency
//
// Every method is internally consistent: a reader never observes a
// partially updated table. No atomicity is guaranteed across calls; callers
// sharing a dispatcher between goroutines must serialize multi-call
// sequences themselves.
package dispatch
