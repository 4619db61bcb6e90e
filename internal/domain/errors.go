package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates a keyed lookup returned no payload.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates caller input validation failure.
	ErrValidation = errors.New("validation")
	// ErrConflict indicates a create collided with an existing key.
	ErrConflict = errors.New("conflict")
	// ErrDependency indicates a downstream store or service call failed.
	ErrDependency = errors.New("dependency unavailable")
)

// NotFoundError tags an error as a missing-record failure. The message is
// what the HTTP surface returns to the caller.
func NotFoundError(msg string) error {
	return errors.Join(ErrNotFound, errors.New(strings.TrimSpace(msg)))
}

// ValidationError tags an error as input validation failure.
func ValidationError(msg string) error {
	return errors.Join(ErrValidation, errors.New(strings.TrimSpace(msg)))
}

// ConflictError tags an error as a duplicate-key failure.
func ConflictError(msg string) error {
	return errors.Join(ErrConflict, errors.New(strings.TrimSpace(msg)))
}

// DependencyError wraps a transport, protocol, or decode failure from a named
// downstream target. Callers decide whether it is fatal to the request or
// recovered locally; the error itself carries no policy.
type DependencyError struct {
	Target string
	Err    error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Target, e.Err)
}

func (e *DependencyError) Unwrap() []error { return []error{ErrDependency, e.Err} }

// Dependency builds a DependencyError for target with the underlying cause.
func Dependency(target string, err error) error {
	return &DependencyError{Target: target, Err: err}
}

// Message strips sentinel prefixes from a tagged error, leaving the
// user-facing text. Join renders as newline-separated messages; the last
// line is the one supplied at the tagging site.
func Message(err error) string {
	if err == nil {
		return ""
	}
	parts := strings.Split(err.Error(), "\n")
	return parts[len(parts)-1]
}
