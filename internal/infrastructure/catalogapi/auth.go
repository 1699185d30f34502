package catalogapi

import (
	"context"

	"github.com/shopdesk/store-admin/internal/core/domain"
	"github.com/shopdesk/store-admin/internal/core/ports"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type meResponse struct {
	User *domain.User `json:"user"`
}

// Login calls POST /auth/login. It never sends an Authorization header.
func (c *Client) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	var out loginResponse
	resp, err := c.request(ctx, ports.Credentials{}).
		SetBody(loginRequest{Username: username, Password: password}).
		SetResult(&out).
		Post("/auth/login")
	if err := c.check("login", resp, err); err != nil {
		return "", nil, err
	}
	return out.Token, out.User, nil
}

// Me calls GET /auth/me.
func (c *Client) Me(ctx context.Context, creds ports.Credentials) (*domain.User, error) {
	var out meResponse
	resp, err := c.request(ctx, creds).
		SetResult(&out).
		Get("/auth/me")
	if err := c.check("current user", resp, err); err != nil {
		return nil, err
	}
	return out.User, nil
}
