package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnauthenticated is returned by operations that need a signed-in session
// when none is held.
var ErrUnauthenticated = errors.New("not authenticated")

// NormalizedError is the single error shape the rest of the client consumes.
// It is produced once, at the boundary where the raw API response is parsed;
// callers only ever read Message and FieldErrors.
type NormalizedError struct {
	StatusCode  int
	Message     string
	FieldErrors map[string]string
}

func (e *NormalizedError) Error() string {
	return e.Message
}

// Unauthorized reports whether the failure must tear down the session when it
// occurs on the session-bearing call.
func (e *NormalizedError) Unauthorized() bool {
	return e.StatusCode == 401
}

// FieldSummary flattens FieldErrors into "field: message" pairs joined with
// "; ", in field order. Empty when there are no field errors.
func (e *NormalizedError) FieldSummary() string {
	if len(e.FieldErrors) == 0 {
		return ""
	}

	fields := make([]string, 0, len(e.FieldErrors))
	for field := range e.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.FieldErrors[field]))
	}

	return strings.Join(parts, "; ")
}
