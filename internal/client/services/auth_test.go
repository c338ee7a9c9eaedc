package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/cmskeeper/internal/client/api"
	"github.com/dmitrijs2005/cmskeeper/internal/client/models"
	"github.com/dmitrijs2005/cmskeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/cmskeeper/internal/client/session"
	"github.com/dmitrijs2005/cmskeeper/internal/common"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupSession(t *testing.T) *session.Store {
	t.Helper()
	db, err := sql.Open("sqlite", "file:authsvc_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL);
DELETE FROM metadata;
`)
	require.NoError(t, err)
	return session.NewStore(metadata.NewSQLiteRepository(db))
}

// ---- fake gateway ----

type fakeAuthAPI struct {
	loginResp *models.LoginResponse
	loginErr  error

	meResp   *models.User
	meErr    error
	meCalled bool
}

func (f *fakeAuthAPI) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResp, nil
}

func (f *fakeAuthAPI) Me(ctx context.Context) (*models.User, error) {
	f.meCalled = true
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.meResp, nil
}

// ---- tests ----

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	sess := setupSession(t)
	fake := &fakeAuthAPI{loginResp: &models.LoginResponse{
		Token: "tok-1",
		User:  models.User{ID: 1, Username: "admin"},
	}}

	svc := NewAuthService(fake, sess)
	u, err := svc.Login(ctx, "admin", "pw")
	require.NoError(t, err)
	require.Equal(t, "admin", u.Username)
	require.Equal(t, "tok-1", sess.Token())
}

func TestLogin_BadCredentialsLeavesSessionEmpty(t *testing.T) {
	ctx := context.Background()
	sess := setupSession(t)
	fake := &fakeAuthAPI{loginErr: &api.APIError{Status: 401, Message: "Invalid username or password"}}

	svc := NewAuthService(fake, sess)
	_, err := svc.Login(ctx, "admin", "wrong")

	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	require.Contains(t, err.Error(), "Invalid username or password", "backend message must surface verbatim")
	require.False(t, sess.HasCredential())
}

func TestCurrentUser_NoCredentialShortCircuits(t *testing.T) {
	sess := setupSession(t)
	fake := &fakeAuthAPI{}

	svc := NewAuthService(fake, sess)
	_, err := svc.CurrentUser(context.Background())

	require.ErrorIs(t, err, common.ErrSessionInvalid)
	require.False(t, fake.meCalled, "absent credential must not trigger a network call")
}

func TestCurrentUser_ValidationFailureClearsCredential(t *testing.T) {
	ctx := context.Background()
	sess := setupSession(t)
	require.NoError(t, sess.SetToken(ctx, "stale"))
	fake := &fakeAuthAPI{meErr: &api.APIError{Status: 401, Message: "token expired"}}

	svc := NewAuthService(fake, sess)
	_, err := svc.CurrentUser(ctx)

	require.ErrorIs(t, err, common.ErrSessionInvalid)
	require.False(t, sess.HasCredential(), "stale token must be treated as absent")
}

func TestCurrentUser_Success(t *testing.T) {
	ctx := context.Background()
	sess := setupSession(t)
	require.NoError(t, sess.SetToken(ctx, "tok"))
	fake := &fakeAuthAPI{meResp: &models.User{ID: 1, Username: "admin"}}

	svc := NewAuthService(fake, sess)
	u, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	require.Equal(t, "admin", u.Username)
	require.Equal(t, "admin", sess.User().Username)
}

func TestLogout_Idempotent(t *testing.T) {
	ctx := context.Background()
	sess := setupSession(t)
	require.NoError(t, sess.SetToken(ctx, "tok"))

	svc := NewAuthService(&fakeAuthAPI{}, sess)
	require.NoError(t, svc.Logout(ctx))
	require.NoError(t, svc.Logout(ctx))
	require.False(t, sess.HasCredential())
}
