package exitcode

import (
	stderrors "errors"
	"os"

	hubErrors "github.com/stellarhub/stellarctl/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates an authentication or authorization failure
	AuthError = 5

	// NetworkError indicates a network connectivity issue
	NetworkError = 6

	// Interrupted indicates the run was cancelled by the user
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}
	Exit(DetermineExitCode(err))
}

// DetermineExitCode maps an error to its exit code by error code category.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var hubErr *hubErrors.HubError
	if stderrors.As(err, &hubErr) {
		switch hubErr.Code {
		case hubErrors.ErrCodeGuardNotAuthenticated,
			hubErrors.ErrCodeGuardAccessDenied,
			hubErrors.ErrCodeSessionMissing:
			return AuthError
		case hubErrors.ErrCodeGatewayNetwork:
			return NetworkError
		}
	}

	return GeneralError
}
