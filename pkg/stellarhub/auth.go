package stellarhub

import (
	"context"

	"github.com/stellarhub/stellarctl/internal/identity"
)

// SignIn authenticates against the current tenant and returns the issued
// token plus the signed-in user. The server also sets its session cookie on
// the gateway's jar; the token is kept for client-side bookkeeping only.
func (c *Client) SignIn(ctx context.Context, email, password string) (*AuthResponse, error) {
	req := SignInRequest{Email: email, Password: password}

	var resp AuthResponse
	if err := c.gw.Post(ctx, "/auth/signin", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SignUp registers a new user and signs them in. The response is the same
// shape as SignIn: the issued token plus the created user.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.gw.Post(ctx, "/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SignOut ends the server-side session. The caller still owns clearing the
// local session store and identity context.
func (c *Client) SignOut(ctx context.Context) error {
	return c.gw.Get(ctx, "/auth/signout", nil)
}

// ResetPassword completes a password reset with an emailed reset token.
func (c *Client) ResetPassword(ctx context.Context, resetToken, password string) error {
	payload := map[string]string{
		"Password": password,
		"token":    resetToken,
	}
	return c.gw.Post(ctx, "/auth/resetpassword", payload, nil)
}

// ResetMyPassword requests a reset email for the signed-in user.
func (c *Client) ResetMyPassword(ctx context.Context) error {
	return c.gw.Post(ctx, "/user/resetmypassword", map[string]string{}, nil)
}

// UpdateProfile patches the signed-in user's profile and returns the updated
// record.
func (c *Client) UpdateProfile(ctx context.Context, patch identity.User) (*identity.User, error) {
	var user identity.User
	if err := c.gw.Patch(ctx, "/user/update", patch, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns the account's user roster. Admin only.
func (c *Client) ListUsers(ctx context.Context) ([]identity.User, error) {
	var resp UserListResponse
	if err := c.gw.Get(ctx, "/admin/user/list", &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// InviteUser invites a user into the account. Admin only.
func (c *Client) InviteUser(ctx context.Context, req InviteUserRequest) error {
	return c.gw.Post(ctx, "/admin/user/invite", req, nil)
}
