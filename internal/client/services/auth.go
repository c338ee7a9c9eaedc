// Package services contains application services for the admin console
// client. The auth service implements the session contract: login, lazy
// current-user validation, and unconditional logout.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/cmskeeper/internal/client/api"
	"github.com/dmitrijs2005/cmskeeper/internal/client/models"
	"github.com/dmitrijs2005/cmskeeper/internal/client/session"
	"github.com/dmitrijs2005/cmskeeper/internal/common"
)

// AuthAPI is the slice of the gateway the auth service needs. api.Client's
// Auth group satisfies it; tests provide fakes.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	Me(ctx context.Context) (*models.User, error)
}

type AuthService struct {
	api     AuthAPI
	session *session.Store
}

func NewAuthService(api AuthAPI, session *session.Store) *AuthService {
	return &AuthService{api: api, session: session}
}

// Login authenticates against the backend and stores the returned token.
// On rejected credentials the session is left without a credential and the
// error wraps common.ErrInvalidCredentials, carrying the backend's message
// verbatim when one was returned.
func (a *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	resp, err := a.api.Login(ctx, username, password)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			if apiErr.Message != "" {
				return nil, fmt.Errorf("%w: %s", common.ErrInvalidCredentials, apiErr.Message)
			}
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := a.session.SetToken(ctx, resp.Token); err != nil {
		return nil, err
	}
	a.session.SetUser(&resp.User)
	return &resp.User, nil
}

// CurrentUser validates the held credential with a round-trip to the
// backend. When no credential is held it short-circuits without any network
// call. Validation failure clears the credential: a stale or expired token
// is treated the same as an absent one.
func (a *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	if !a.session.HasCredential() {
		return nil, common.ErrSessionInvalid
	}

	u, err := a.api.Me(ctx)
	if err != nil {
		_ = a.session.Clear(ctx)
		return nil, fmt.Errorf("%w: %s", common.ErrSessionInvalid, err)
	}

	a.session.SetUser(u)
	return u, nil
}

// Logout clears the credential unconditionally. Idempotent.
func (a *AuthService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}
