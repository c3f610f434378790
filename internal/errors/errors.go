package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Session errors (SESSION-001 to SESSION-099)
	ErrCodeSessionWriteFailed  ErrorCode = "SESSION-001"
	ErrCodeSessionRemoveFailed ErrorCode = "SESSION-002"
	ErrCodeSessionMissing      ErrorCode = "SESSION-003"

	// Gateway errors (GATEWAY-001 to GATEWAY-099)
	ErrCodeGatewayEncode  ErrorCode = "GATEWAY-001"
	ErrCodeGatewayNetwork ErrorCode = "GATEWAY-002"
	ErrCodeGatewayAPI     ErrorCode = "GATEWAY-003"
	ErrCodeGatewayDecode  ErrorCode = "GATEWAY-004"

	// Guard errors (GUARD-001 to GUARD-099)
	ErrCodeGuardNotAuthenticated ErrorCode = "GUARD-001"
	ErrCodeGuardAccessDenied     ErrorCode = "GUARD-002"
	ErrCodeGuardBootstrapFailed  ErrorCode = "GUARD-003"

	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigRead    ErrorCode = "CONFIG-001"
	ErrCodeConfigInvalid ErrorCode = "CONFIG-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileReadFailed  ErrorCode = "IO-001"
	ErrCodeFileWriteFailed ErrorCode = "IO-002"
)

// HubError represents an enhanced error with code, suggestions, and a cause
type HubError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *HubError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *HubError) Unwrap() error {
	return e.Cause
}

// New creates a new HubError
func New(code ErrorCode, message string) *HubError {
	return &HubError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new HubError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *HubError {
	return &HubError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *HubError) WithSuggestion(suggestion string) *HubError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *HubError) WithSuggestions(suggestions ...string) *HubError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// Common error constructors for frequently used errors

// NewNotAuthenticatedError creates an error for commands that need a session
func NewNotAuthenticatedError() *HubError {
	return New(ErrCodeGuardNotAuthenticated, "not signed in").
		WithSuggestion("Run 'stellarctl auth login' to sign in").
		WithSuggestion("Check that your account's dashboard domain is reachable")
}

// NewAccessDeniedError creates an error for insufficient role rank
func NewAccessDeniedError(userRole, requiredRole string) *HubError {
	return New(ErrCodeGuardAccessDenied,
		fmt.Sprintf("role %q does not grant access (requires %q)", userRole, requiredRole)).
		WithSuggestion("Ask an account owner or admin to raise your role")
}

// NewNetworkError creates a transport-level failure error
func NewNetworkError(cause error) *HubError {
	return Wrap(ErrCodeGatewayNetwork, "network error", cause).
		WithSuggestion("Check your connection and the configured API base URL")
}

// NewConfigReadError creates a config file read error
func NewConfigReadError(path string, cause error) *HubError {
	return Wrap(ErrCodeConfigRead, fmt.Sprintf("failed to read config file: %s", path), cause).
		WithSuggestion("Check if the file path is correct")
}

// NewConfigInvalidError creates a config parse error
func NewConfigInvalidError(path string, cause error) *HubError {
	return Wrap(ErrCodeConfigInvalid, fmt.Sprintf("failed to parse config file: %s", path), cause).
		WithSuggestion("Ensure the file is valid YAML")
}
