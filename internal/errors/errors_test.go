package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeGatewayNetwork, "test error message")

	if err.Code != ErrCodeGatewayNetwork {
		t.Errorf("expected code %s, got %s", ErrCodeGatewayNetwork, err.Code)
	}

	if err.Message != "test error message" {
		t.Errorf("expected message 'test error message', got %s", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	err := Wrap(ErrCodeConfigRead, "could not load config", cause)

	if err.Cause != cause {
		t.Errorf("expected cause to be preserved")
	}

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestErrorFormat(t *testing.T) {
	err := New(ErrCodeGuardAccessDenied, "access denied").
		WithSuggestion("ask an admin")

	msg := err.Error()

	if !strings.Contains(msg, string(ErrCodeGuardAccessDenied)) {
		t.Errorf("expected error string to contain code, got %s", msg)
	}
	if !strings.Contains(msg, "access denied") {
		t.Errorf("expected error string to contain message, got %s", msg)
	}
	if !strings.Contains(msg, "ask an admin") {
		t.Errorf("expected error string to contain suggestion, got %s", msg)
	}
}

func TestErrorsAs(t *testing.T) {
	var hubErr *HubError

	err := fmt.Errorf("outer: %w", NewNotAuthenticatedError())
	if !errors.As(err, &hubErr) {
		t.Fatal("expected errors.As to unwrap HubError")
	}
	if hubErr.Code != ErrCodeGuardNotAuthenticated {
		t.Errorf("expected code %s, got %s", ErrCodeGuardNotAuthenticated, hubErr.Code)
	}
}

func TestNewAccessDeniedError(t *testing.T) {
	err := NewAccessDeniedError("user", "admin")

	if err.Code != ErrCodeGuardAccessDenied {
		t.Errorf("expected code %s, got %s", ErrCodeGuardAccessDenied, err.Code)
	}
	if !strings.Contains(err.Message, "user") || !strings.Contains(err.Message, "admin") {
		t.Errorf("expected roles in message, got %s", err.Message)
	}
}
