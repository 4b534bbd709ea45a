// Package handler provides the handler contract and result types for
// command dispatch.
package handler

import "github.com/skywatch-cli/skywatch/internal/command"

// Handler processes a parsed command.
type Handler interface {
	// Handle executes the command and returns a result.
	Handle(args command.Args) Result
}

// Func adapts a plain function to the Handler interface.
type Func func(args command.Args) Result

// Handle implements Handler.
func (f Func) Handle(args command.Args) Result {
	if f == nil {
		return Errorf("handler function is nil")
	}
	return f(args)
}
