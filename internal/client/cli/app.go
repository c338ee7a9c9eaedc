package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/cmskeeper/internal/client/api"
	"github.com/dmitrijs2005/cmskeeper/internal/client/config"
	"github.com/dmitrijs2005/cmskeeper/internal/client/profile"
	"github.com/dmitrijs2005/cmskeeper/internal/client/services"
	"github.com/dmitrijs2005/cmskeeper/internal/client/session"
	"github.com/dmitrijs2005/cmskeeper/internal/logging"
)

type App struct {
	config  *config.Config
	profile *profile.Profile
	session *session.Store
	api     *api.Client
	auth    *services.AuthService
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer

	// expired flips when the gateway publishes SessionExpired; resource
	// screens poll it and fall back to the root prompt.
	expired bool
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	p, err := profile.Open(ctx, c.ProfileDir)
	if err != nil {
		return nil, fmt.Errorf("error initializing profile: %w", err)
	}

	store := session.NewStore(p.Metadata)
	if err := store.Restore(ctx); err != nil {
		p.Close()
		return nil, err
	}

	logger := logging.NewJSONLogger(io.Discard)
	apiClient := api.New(c.ServerURL, c.RequestTimeout, store, logger)

	app := &App{
		config:  c,
		profile: p,
		session: store,
		api:     apiClient,
		auth:    services.NewAuthService(apiClient.Auth, store),
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	apiClient.OnSessionExpired(func() {
		app.expired = true
		fmt.Fprintln(app.out, "Session expired. Please log in again.")
	})

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.profile.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.HasCredential()
}

// guard blocks entry into a resource screen without a valid session. The
// credential presence check is synchronous; validity is confirmed with a
// round-trip, and a stale token is cleared before the operator is bounced
// back to the login prompt.
func (a *App) guard(ctx context.Context) bool {
	if !a.session.HasCredential() {
		fmt.Fprintln(a.out, "Please log in first.")
		return false
	}
	if _, err := a.auth.CurrentUser(ctx); err != nil {
		// On a 401 the expiry subscriber has already announced the logout.
		if !a.expired {
			fmt.Fprintf(a.out, "Cannot verify session: %v\n", err)
		}
		return false
	}
	a.expired = false
	return true
}

// Confirm implements controllers.UI.
func (a *App) Confirm(prompt string) bool {
	ans, err := GetSimpleText(a.reader, prompt+" [y/N]", a.out)
	if err != nil {
		return false
	}
	ans = strings.ToLower(ans)
	return ans == "y" || ans == "yes"
}

// Alert implements controllers.UI.
func (a *App) Alert(msg string) {
	fmt.Fprintln(a.out, msg)
}

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	u, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %v\n", err)
		return err
	}

	a.expired = false
	fmt.Fprintf(a.out, "Logged in as %s\n", u.Username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI validates the session and prints the authenticated user.
func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.auth.CurrentUser(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Not logged in")
		return err
	}
	fmt.Fprintln(a.out, u.Username)
	return nil
}
