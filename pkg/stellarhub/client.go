// Package stellarhub is the typed client for the StellarHub dashboard API.
// All wire traffic goes through the injected request gateway, which owns URL
// scoping, credentials, and failure handling; this package only knows paths
// and payload shapes.
package stellarhub

import (
	"context"

	"github.com/stellarhub/stellarctl/internal/identity"
)

// Gateway is the transport surface the client consumes.
type Gateway interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, payload, out any) error
	Put(ctx context.Context, path string, payload, out any) error
	Patch(ctx context.Context, path string, payload, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// Client exposes the dashboard's product operations.
type Client struct {
	gw Gateway
}

// New creates a Client on top of gw.
func New(gw Gateway) *Client {
	return &Client{gw: gw}
}

// AccountInfo resolves the tenant for the serving domain. This is the one
// tenant-agnostic bootstrap call; it must succeed before any scoped call
// makes sense.
func (c *Client) AccountInfo(ctx context.Context) (*identity.Account, error) {
	var account identity.Account
	if err := c.gw.Get(ctx, "/api/info", &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// UserInfo returns the signed-in user's profile.
func (c *Client) UserInfo(ctx context.Context) (*identity.User, error) {
	var user identity.User
	if err := c.gw.Get(ctx, "/user/info", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
