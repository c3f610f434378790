package gateway

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellarhub/stellarctl/internal/identity"
	"github.com/stellarhub/stellarctl/internal/notify"
)

func newTestIdentity(accountID string) *identity.Context {
	ids := identity.NewContext()
	if accountID != "" {
		ids.Account.Set(identity.Account{ID: accountID})
	}
	return ids
}

func TestScopedURLConstruction(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	g := New(srv.URL, newTestIdentity("acct_42"))

	err := g.Get(context.Background(), "/user/update", nil)
	require.NoError(t, err)

	assert.Equal(t, "/api/acct_42/user/update", gotPath)
}

func TestAPIRootPathBypassesScoping(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	// Even with no account resolved, the bootstrap path goes out verbatim.
	g := New(srv.URL, newTestIdentity(""))

	err := g.Get(context.Background(), "/api/info", nil)
	require.NoError(t, err)

	assert.Equal(t, "/api/info", gotPath)
}

func TestSuccessDecodesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"_id":"u1","Name":"Ada","Email":"ada@example.com","Role":"admin"}`))
	}))
	defer srv.Close()

	g := New(srv.URL, newTestIdentity("acct_42"))

	var user identity.User
	err := g.Get(context.Background(), "/user/info", &user)
	require.NoError(t, err)

	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "admin", user.Role)
}

func TestStructuredErrorRejectsAndNotifies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":{"message":"Email taken","statusCode":409}}`))
	}))
	defer srv.Close()

	recorder := &notify.Recorder{}
	invalidated := false
	g := New(srv.URL, newTestIdentity("acct_42"), WithNotifier(recorder))
	g.OnSessionInvalidated(func() { invalidated = true })

	err := g.Post(context.Background(), "/admin/user/invite", map[string]string{"Email": "x@y.z"}, nil)
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok, "expected a structured API error classification")
	assert.Equal(t, "Email taken", apiErr.Message)
	assert.Equal(t, 409, apiErr.StatusCode)

	events := recorder.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "Email taken", events[0].Message)

	assert.False(t, invalidated, "a non-401 must not invalidate the session")
}

func TestUnauthorizedInvalidatesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Unauthorized","statusCode":401}}`))
	}))
	defer srv.Close()

	recorder := &notify.Recorder{}
	var fired atomic.Int32
	g := New(srv.URL, newTestIdentity("acct_42"), WithNotifier(recorder))
	g.OnSessionInvalidated(func() { fired.Add(1) })

	err := g.Get(context.Background(), "/dashboard/summary", nil)
	require.Error(t, err)

	assert.Equal(t, int32(1), fired.Load(), "401 must invalidate exactly once")

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestUnauthorizedInvalidatesOnlyOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Unauthorized","statusCode":401}}`))
	}))
	defer srv.Close()

	var fired atomic.Int32
	g := New(srv.URL, newTestIdentity("acct_42"))
	g.OnSessionInvalidated(func() { fired.Add(1) })

	// Two concurrent pages both fail with 401; teardown still happens once.
	_ = g.Get(context.Background(), "/device/list", nil)
	_ = g.Get(context.Background(), "/workorder/list", nil)

	assert.Equal(t, int32(1), fired.Load())
}

func TestUnstructuredFailureIsNetworkClass(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer srv.Close()

	recorder := &notify.Recorder{}
	g := New(srv.URL, newTestIdentity("acct_42"), WithNotifier(recorder))

	err := g.Get(context.Background(), "/device/list", nil)
	require.Error(t, err)

	assert.True(t, IsNetworkError(err))
	_, ok := AsAPIError(err)
	assert.False(t, ok)

	events := recorder.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "Network error", events[0].Message)
}

func TestConnectionFailureIsNetworkClass(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening

	recorder := &notify.Recorder{}
	g := New(srv.URL, newTestIdentity("acct_42"), WithNotifier(recorder))

	err := g.Get(context.Background(), "/device/list", nil)
	require.Error(t, err)
	assert.True(t, IsNetworkError(err))

	events := recorder.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "Network error", events[0].Message)
}

func TestStructuredErrorWithEmptyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"","statusCode":400}}`))
	}))
	defer srv.Close()

	recorder := &notify.Recorder{}
	g := New(srv.URL, newTestIdentity("acct_42"), WithNotifier(recorder))

	err := g.Get(context.Background(), "/device/list", nil)
	require.Error(t, err)

	events := recorder.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "An unexpected error occurred", events[0].Message)
}

func TestRequestCarriesPayloadAndHeaders(t *testing.T) {
	var gotBody []byte
	var gotContentType, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-Id")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	g := New(srv.URL, newTestIdentity("acct_42"))

	err := g.Post(context.Background(), "/admin/user/invite",
		map[string]string{"Email": "new@acme.io", "Role": "user"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotRequestID)
	assert.JSONEq(t, `{"Email":"new@acme.io","Role":"user"}`, string(gotBody))
}

func TestScopingReadsAccountAtCallTime(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ids := newTestIdentity("")
	g := New(srv.URL, ids)

	require.NoError(t, g.Get(context.Background(), "/api/info", nil))

	// Account resolves after bootstrap; later calls pick up the new scope.
	ids.Account.Set(identity.Account{ID: "acct_42"})
	require.NoError(t, g.Get(context.Background(), "/user/info", nil))

	assert.Equal(t, []string{"/api/info", "/api/acct_42/user/info"}, paths)
}
