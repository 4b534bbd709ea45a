package handler

import "fmt"

// ResultStatus indicates the outcome of a command.
type ResultStatus uint8

const (
	// StatusOK indicates successful execution.
	StatusOK ResultStatus = iota
	// StatusNoOp indicates the command had no effect.
	StatusNoOp
	// StatusNotFound indicates no handler was registered for the command.
	StatusNotFound
	// StatusError indicates an error occurred.
	StatusError
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusNotFound:
		return "not-found"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result represents the outcome of handling a command.
type Result struct {
	// Status indicates the result status.
	Status ResultStatus

	// Error contains any error that occurred.
	Error error

	// Message is an optional status message for display.
	Message string

	// Value holds the optional handler return value.
	Value any
}

// IsOK returns true if the result indicates success.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// IsError returns true if the result indicates an error.
func (r Result) IsError() bool {
	return r.Status == StatusError
}

// HasValue returns true if the handler produced a return value.
func (r Result) HasValue() bool {
	return r.Value != nil
}

// OK creates a successful result.
func OK() Result {
	return Result{Status: StatusOK}
}

// OKWithValue creates a successful result carrying a return value.
func OKWithValue(value any) Result {
	return Result{Status: StatusOK, Value: value}
}

// OKWithMessage creates a successful result with a message.
func OKWithMessage(msg string) Result {
	return Result{Status: StatusOK, Message: msg}
}

// NoOp creates a no-operation result.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// NotFoundf creates a not-found result with a formatted message.
func NotFoundf(format string, args ...any) Result {
	return Result{Status: StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// Error creates an error result.
func Error(err error) Result {
	return Result{Status: StatusError, Error: err}
}

// Errorf creates an error result with a formatted message.
func Errorf(format string, args ...any) Result {
	return Result{
		Status: StatusError,
		Error:  fmt.Errorf(format, args...),
	}
}

// WithMessage returns a copy of the result with the specified message.
func (r Result) WithMessage(msg string) Result {
	r.Message = msg
	return r
}

// WithValue returns a copy of the result with the specified value.
func (r Result) WithValue(value any) Result {
	r.Value = value
	return r
}
