package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/cmskeeper/internal/client/models"
)

// AuthAPI covers the authentication endpoints.
type AuthAPI struct {
	c *Client
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token. The request is sent
// unauthenticated when no token is held.
func (a *AuthAPI) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	var out models.LoginResponse
	err := a.c.doJSON(ctx, http.MethodPost, "/auth/login", loginRequest{Username: username, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Me validates the held token and returns the current user.
func (a *AuthAPI) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := a.c.doJSON(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
