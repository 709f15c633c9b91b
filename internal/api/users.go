package api

import (
	"context"
	"fmt"

	"github.com/me/clinidash/pkg/model"
)

// Admin endpoints. The caller must hold an admin token; the server enforces
// this regardless of what the client-side role hint says.

// RegisterUser creates a practitioner or admin account.
func (c *Client) RegisterUser(ctx context.Context, in RegisterUserInput) (model.User, error) {
	var u model.User
	if err := c.do(ctx, "users.register", "POST", "/admin/admin/users/register", in, &u, "failed to register user"); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// ListUsers fetches a page of user accounts.
func (c *Client) ListUsers(ctx context.Context, opts model.ListOptions) ([]model.User, error) {
	opts.Clamp()
	var users []model.User
	path := fmt.Sprintf("/admin/admin/users?skip=%d&limit=%d", opts.Skip, opts.Limit)
	if err := c.do(ctx, "users.list", "GET", path, nil, &users, "failed to load users"); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserStatus activates or deactivates an account.
func (c *Client) UpdateUserStatus(ctx context.Context, id int, isActive bool) (model.User, error) {
	var u model.User
	path := fmt.Sprintf("/admin/admin/users/%d/status", id)
	body := map[string]bool{"is_active": isActive}
	if err := c.do(ctx, "users.status", "PATCH", path, body, &u, "failed to update user status"); err != nil {
		return model.User{}, err
	}
	return u, nil
}
