package api

import (
	"context"

	"github.com/DmitruNS/kuc/internal/domain"
)

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		Post("/api/auth/login")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", apiError("login", resp)
	}
	return out.Token, nil
}

func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var out domain.User
	resp, err := c.http.R().SetContext(ctx).
		SetResult(&out).
		Get("/api/auth/me")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError("current user", resp)
	}
	return &out, nil
}
