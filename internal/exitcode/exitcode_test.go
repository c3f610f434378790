package exitcode

import (
	"fmt"
	"testing"

	hubErrors "github.com/stellarhub/stellarctl/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, Success},
		{"not authenticated", hubErrors.NewNotAuthenticatedError(), AuthError},
		{"access denied", hubErrors.NewAccessDeniedError("user", "admin"), AuthError},
		{"network", hubErrors.NewNetworkError(fmt.Errorf("refused")), NetworkError},
		{"plain error", fmt.Errorf("something broke"), GeneralError},
		{"wrapped auth", fmt.Errorf("outer: %w", hubErrors.NewNotAuthenticatedError()), AuthError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetermineExitCode(tc.err); got != tc.want {
				t.Errorf("DetermineExitCode() = %d, want %d", got, tc.want)
			}
		})
	}
}
