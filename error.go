/*
toolchain pairs deterministic MCP tool servers with a plan-then-execute
runner: a language model decomposes a request into an ordered chain of
tool calls, which are executed one at a time against a remote MCP server,
substituting earlier step outputs into later steps.
*/
package toolchain

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrNotFound
	ErrBadParameter
	ErrNotImplemented
	ErrConflict
	ErrInternalServerError
	ErrMalformedPlan
	ErrInvalidStep
	ErrEmptyPlan
	ErrBadReference
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrNotFound:
		return "not found"
	case ErrBadParameter:
		return "bad parameter"
	case ErrNotImplemented:
		return "not implemented"
	case ErrConflict:
		return "conflict"
	case ErrInternalServerError:
		return "internal server error"
	case ErrMalformedPlan:
		return "malformed plan"
	case ErrInvalidStep:
		return "invalid step"
	case ErrEmptyPlan:
		return "empty plan"
	case ErrBadReference:
		return "bad result reference"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}
