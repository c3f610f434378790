// Package guard decides whether a command may run, comparing the signed-in
// user's role rank against the command's required rank, and performs the
// first-touch identity bootstrap.
//
// The policy is explicit rather than lazy: with no plausible session the
// guard fails fast instead of letting the first 401 tear the session down.
package guard

import (
	"context"

	"github.com/stellarhub/stellarctl/internal/errors"
	"github.com/stellarhub/stellarctl/internal/identity"
	"github.com/stellarhub/stellarctl/internal/log"
)

// Fetcher is the one gateway operation the guard needs.
type Fetcher interface {
	Get(ctx context.Context, path string, out any) error
}

// SessionChecker answers whether a plausible session exists.
type SessionChecker interface {
	IsAuthenticated() (string, bool)
}

// Guard gates access to protected operations.
type Guard struct {
	gw       Fetcher
	sessions SessionChecker
	ids      *identity.Context
	logger   *log.Logger
}

// New creates a Guard.
func New(gw Fetcher, sessions SessionChecker, ids *identity.Context, logger *log.Logger) *Guard {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Guard{gw: gw, sessions: sessions, ids: ids, logger: logger}
}

// Authorize allows the operation iff the current user's rank satisfies
// required. On first touch it populates the user identity store with one
// GET /user/info. If that bootstrap fails the guard degrades to rank 0
// instead of failing the command outright; only zero-rank requirements
// still pass.
func (g *Guard) Authorize(ctx context.Context, required Role) error {
	if _, ok := g.sessions.IsAuthenticated(); !ok {
		return errors.NewNotAuthenticatedError()
	}

	if g.ids.User.IsEmpty() {
		var user identity.User
		if err := g.gw.Get(ctx, "/user/info", &user); err != nil {
			// Degraded mode: the role check below resolves against an
			// empty store (rank 0).
			g.logger.WithError(err).Warn("identity bootstrap failed, proceeding without identity")
		} else {
			g.ids.User.Set(user)
		}
	}

	userRole := Role(g.ids.User.Get().Role)
	if !HasAccess(userRole, required) {
		return errors.NewAccessDeniedError(string(userRole), string(required))
	}
	return nil
}
