// Package apperr defines the error kinds the API distinguishes. Handlers
// and the HTTP error handler map them onto status codes; services never
// leak raw store errors past this package.
package apperr

import "fmt"

// ValidationError means caller-supplied fields fail a constraint. The
// caller fixes the input and retries; the server never retries on its own.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError means the referenced record does not exist within the
// caller's owner scope. A record owned by someone else presents identically,
// so existence never leaks across owners.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// ConflictError means the request collides with existing state, e.g. a
// taken username.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func Conflict(message string) error {
	return &ConflictError{Message: message}
}

// StoreError wraps a persistence failure. Safe to retry with backoff;
// distinct from caller errors.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func Store(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
