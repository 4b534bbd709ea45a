package script

import "errors"

// Script errors.
var (
	// ErrStateClosed indicates the Lua state has been closed.
	ErrStateClosed = errors.New("script: state is closed")

	// ErrFunctionNotDefined indicates the script defines no such function.
	ErrFunctionNotDefined = errors.New("script: function not defined")
)
