package dispatch

import "errors"

// ErrPanic wraps the error carried by a result when a handler panicked and
// was recovered. Match with errors.Is.
var ErrPanic = errors.New("dispatch: handler panic")
