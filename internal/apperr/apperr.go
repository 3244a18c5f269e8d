// Package apperr defines the error taxonomy shared by the services and the
// HTTP layer. Each kind maps to one status code; services wrap collaborator
// failures into these types so handlers never inspect raw store or provider
// errors.
package apperr

import "fmt"

// ValidationError reports missing or malformed input. Rejected before any
// collaborator is invoked; no side effects.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validation builds a ValidationError from a format string.
func Validation(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

// NotFound builds a NotFoundError for the given entity and key.
func NotFound(entity, key string) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: key}
}

// GenerationError reports an AI generation failure: provider error, timeout,
// or an empty/malformed result. Nothing is persisted when one occurs.
type GenerationError struct {
	Purpose string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Purpose, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// SearchServiceError reports a video search failure. Callers degrade to the
// fallback URL instead of failing the request.
type SearchServiceError struct {
	Err error
}

func (e *SearchServiceError) Error() string {
	return fmt.Sprintf("video search failed: %v", e.Err)
}

func (e *SearchServiceError) Unwrap() error { return e.Err }

// StoreError reports a persistence-layer failure, surfaced as-is.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store wraps err as a StoreError for the named operation.
// Returns nil when err is nil.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
