package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrInvalidContent", ErrInvalidContent},
		{"ErrPublishLocked", ErrPublishLocked},
		{"ErrNoSnapshots", ErrNoSnapshots},
		{"ErrUnexpectedStatus", ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestViolation_String(t *testing.T) {
	assert.Equal(t, "series[0].points: must contain at least 1 item",
		Violation{Path: "series[0].points", Reason: "must contain at least 1 item"}.String())
	assert.Equal(t, "unparseable", Violation{Reason: "unparseable"}.String())
}

func TestValidationError_IsInvalidContent(t *testing.T) {
	err := error(&ValidationError{Violations: []Violation{{Path: "kpis[0].label", Reason: "is required"}}})

	assert.True(t, errors.Is(err, ErrInvalidContent))
	assert.Contains(t, err.Error(), "kpis[0].label: is required")
}

func TestValidationError_ListsEveryViolation(t *testing.T) {
	err := &ValidationError{Violations: []Violation{
		{Path: "kpis[0].label", Reason: "is required"},
		{Path: "series[0].points", Reason: "must contain at least 1 item"},
	}}

	msg := err.Error()
	assert.Contains(t, msg, "2 violations")
	assert.Contains(t, msg, "kpis[0].label")
	assert.Contains(t, msg, "series[0].points")
	assert.True(t, err.HasPath("series[0].points"))
	assert.False(t, err.HasPath("refs"))
}

func TestHTTPStatusError(t *testing.T) {
	err := error(&HTTPStatusError{URL: "http://x/data/market.json", StatusCode: 500, Status: "500 Internal Server Error"})

	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	assert.Equal(t, "GET http://x/data/market.json: 500 Internal Server Error", err.Error())

	bare := &HTTPStatusError{URL: "u", StatusCode: 404}
	assert.Equal(t, "GET u: 404", bare.Error())
}

func TestLockHeldError(t *testing.T) {
	err := error(&LockHeldError{LockPath: "/tmp/.market.lock", HolderPID: 42})

	assert.True(t, errors.Is(err, ErrPublishLocked))
	assert.Contains(t, err.Error(), "PID 42")

	unknown := &LockHeldError{LockPath: "/tmp/.market.lock"}
	assert.NotContains(t, unknown.Error(), "PID")
}
