package guard

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellarhub/stellarctl/internal/errors"
	"github.com/stellarhub/stellarctl/internal/identity"
)

type fakeFetcher struct {
	user  identity.User
	err   error
	calls int
}

func (f *fakeFetcher) Get(_ context.Context, path string, out any) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	data, _ := json.Marshal(f.user)
	return json.Unmarshal(data, out)
}

type fakeSessions struct {
	token string
	ok    bool
}

func (f fakeSessions) IsAuthenticated() (string, bool) { return f.token, f.ok }

func TestAuthorizeWithoutSessionFailsFast(t *testing.T) {
	fetcher := &fakeFetcher{}
	g := New(fetcher, fakeSessions{}, identity.NewContext(), nil)

	err := g.Authorize(context.Background(), RoleUser)
	require.Error(t, err)

	var hubErr *errors.HubError
	require.ErrorAs(t, err, &hubErr)
	assert.Equal(t, errors.ErrCodeGuardNotAuthenticated, hubErr.Code)
	assert.Zero(t, fetcher.calls, "no bootstrap call without a session")
}

func TestAuthorizeBootstrapsIdentityOnce(t *testing.T) {
	fetcher := &fakeFetcher{user: identity.User{ID: "u1", Name: "Ada", Role: "admin"}}
	ids := identity.NewContext()
	g := New(fetcher, fakeSessions{token: "tok", ok: true}, ids, nil)

	require.NoError(t, g.Authorize(context.Background(), RoleAdmin))
	require.NoError(t, g.Authorize(context.Background(), RoleUser))

	assert.Equal(t, 1, fetcher.calls, "identity fetched once per session")
	assert.Equal(t, "Ada", ids.User.Get().Name)
}

func TestAuthorizeDeniesInsufficientRank(t *testing.T) {
	fetcher := &fakeFetcher{user: identity.User{ID: "u2", Role: "user"}}
	g := New(fetcher, fakeSessions{token: "tok", ok: true}, identity.NewContext(), nil)

	err := g.Authorize(context.Background(), RoleAdmin)
	require.Error(t, err)

	var hubErr *errors.HubError
	require.ErrorAs(t, err, &hubErr)
	assert.Equal(t, errors.ErrCodeGuardAccessDenied, hubErr.Code)
}

func TestAuthorizeAccountOwnerSatisfiesAdmin(t *testing.T) {
	fetcher := &fakeFetcher{user: identity.User{ID: "u3", Role: "account_owner"}}
	g := New(fetcher, fakeSessions{token: "tok", ok: true}, identity.NewContext(), nil)

	assert.NoError(t, g.Authorize(context.Background(), RoleAdmin))
}

func TestAuthorizeDegradedModeOnBootstrapFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: fmt.Errorf("boom")}
	g := New(fetcher, fakeSessions{token: "tok", ok: true}, identity.NewContext(), nil)

	// Without a resolved identity the user ranks 0: any real requirement fails.
	err := g.Authorize(context.Background(), RoleUser)
	require.Error(t, err)

	var hubErr *errors.HubError
	require.ErrorAs(t, err, &hubErr)
	assert.Equal(t, errors.ErrCodeGuardAccessDenied, hubErr.Code)
}

func TestAuthorizeSkipsBootstrapWhenPopulated(t *testing.T) {
	fetcher := &fakeFetcher{err: fmt.Errorf("should not be called")}
	ids := identity.NewContext()
	ids.User.Set(identity.User{ID: "u4", Role: "user"})
	g := New(fetcher, fakeSessions{token: "tok", ok: true}, ids, nil)

	require.NoError(t, g.Authorize(context.Background(), RoleUser))
	assert.Zero(t, fetcher.calls)
}
