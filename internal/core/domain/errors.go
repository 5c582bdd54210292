package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidContent indicates authored market content failed schema validation.
	ErrInvalidContent = errors.New("invalid market content")

	// ErrPublishLocked indicates another publish holds the advisory lock.
	ErrPublishLocked = errors.New("publish already in progress")

	// ErrNoSnapshots indicates the snapshot directory holds no snapshots yet.
	ErrNoSnapshots = errors.New("no snapshots found")

	// ErrUnexpectedStatus indicates the live endpoint answered with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
)

// Violation is a single schema violation: where it is and what is wrong.
type Violation struct {
	// Path locates the offending field, e.g. "series[0].points".
	// Empty when the problem is not tied to a field (such as a parse error).
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// String renders the violation as "path: reason".
func (v Violation) String() string {
	if v.Path == "" {
		return v.Reason
	}
	return v.Path + ": " + v.Reason
}

// ValidationError carries every violation found in one validation pass.
type ValidationError struct {
	Violations []Violation
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return fmt.Sprintf("%s: %s", ErrInvalidContent, e.Violations[0])
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return fmt.Sprintf("%s: %d violations: %s", ErrInvalidContent, len(e.Violations), strings.Join(parts, "; "))
}

// Unwrap lets errors.Is match ErrInvalidContent.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidContent
}

// HasPath reports whether any violation is reported at path.
func (e *ValidationError) HasPath(path string) bool {
	for _, v := range e.Violations {
		if v.Path == path {
			return true
		}
	}
	return false
}

// HTTPStatusError is returned when a fetch completes with a non-2xx status.
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Status     string
}

// Error implements the error interface.
func (e *HTTPStatusError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d", e.StatusCode)
	}
	return fmt.Sprintf("GET %s: %s", e.URL, status)
}

// Unwrap lets errors.Is match ErrUnexpectedStatus.
func (e *HTTPStatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// LockHeldError is returned when the publish lock belongs to another process.
type LockHeldError struct {
	LockPath  string
	HolderPID int
}

// Error implements the error interface.
func (e *LockHeldError) Error() string {
	if e.HolderPID > 0 {
		return fmt.Sprintf("%s (held by PID %d, lock %s)", ErrPublishLocked, e.HolderPID, e.LockPath)
	}
	return fmt.Sprintf("%s (lock %s)", ErrPublishLocked, e.LockPath)
}

// Unwrap lets errors.Is match ErrPublishLocked.
func (e *LockHeldError) Unwrap() error {
	return ErrPublishLocked
}
