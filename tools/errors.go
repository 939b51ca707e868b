package tools

import (
	"errors"
	"fmt"
)

// ErrorKind classifies tool failures into a stable vocabulary the
// calling agent can branch on.
type ErrorKind string

const (
	// ErrorKindLookup means a name could not be resolved in a local table.
	ErrorKindLookup ErrorKind = "lookup_error"
	// ErrorKindNetwork means a transport-level failure reaching a provider.
	ErrorKindNetwork ErrorKind = "network_error"
	// ErrorKindAPI means a provider answered with a non-success status.
	ErrorKindAPI ErrorKind = "api_error"
	// ErrorKindParse means a provider response could not be interpreted.
	ErrorKindParse ErrorKind = "parse_error"
	// ErrorKindUnexpected is the catch-all for everything else.
	ErrorKindUnexpected ErrorKind = "unexpected_error"
)

// Error is the failure half of a tool payload. Tools never let a Go
// error cross the model boundary; they embed one of these in the
// result instead, so every invocation returns a value.
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// Error implements the error interface so an Error can double as a
// plain Go error inside the process.
func (e *Error) Error() string {
	return e.Message
}

// NewError builds an Error with a formatted message.
func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// AsError coerces any Go error into a tool Error. A classification
// already present anywhere in the chain is preserved; everything else
// becomes unexpected.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var toolErr *Error
	if errors.As(err, &toolErr) {
		return toolErr
	}
	return NewError(ErrorKindUnexpected, "Unexpected error: %v", err)
}
