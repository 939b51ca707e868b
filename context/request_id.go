// Package context carries per-query request IDs for log correlation.
package context

import (
	stdctx "context"

	"github.com/google/uuid"
)

type contextKey int

const requestIDKey contextKey = iota

// NewRequestID generates a new unique request ID.
func NewRequestID() string {
	return uuid.New().String()
}

// WithRequestID returns a child context tagged with the given request ID.
func WithRequestID(parent stdctx.Context, requestID string) stdctx.Context {
	return stdctx.WithValue(parent, requestIDKey, requestID)
}

// EnsureRequestID tags the context with a fresh request ID unless it
// already carries one.
func EnsureRequestID(parent stdctx.Context) stdctx.Context {
	if RequestIDFromContext(parent) != "" {
		return parent
	}
	return WithRequestID(parent, NewRequestID())
}

// RequestIDFromContext extracts the request ID, or "" if none is set.
func RequestIDFromContext(ctx stdctx.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}
