// Package api is the single HTTP gateway between the admin console and the
// CMS backend. Every call goes through one request path that attaches the
// session credential and treats any 401 response as session expiry: the
// credential is cleared, SessionExpired subscribers are notified, and the
// failing call still returns its error to the caller. No resource client
// re-implements auth-failure handling.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/cmskeeper/internal/common"
	"github.com/dmitrijs2005/cmskeeper/internal/logging"
)

// TokenSource supplies the current credential and clears it on expiry.
// session.Store satisfies this interface.
type TokenSource interface {
	Token() string
	Clear(ctx context.Context) error
}

// Client wraps all network calls to a fixed base path.
type Client struct {
	baseURL   string
	http      *http.Client
	tokens    TokenSource
	logger    logging.Logger
	onExpired []func()

	Auth     *AuthAPI
	Articles *ArticlesAPI
	Pages    *PagesAPI
	Media    *MediaAPI
}

// New builds a Client for serverURL (scheme://host:port, no trailing path).
// The "/api" prefix is appended here so resource clients use bare paths.
func New(serverURL string, timeout time.Duration, tokens TokenSource, logger logging.Logger) *Client {
	c := &Client{
		baseURL: strings.TrimRight(serverURL, "/") + "/api",
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger,
	}
	c.Auth = &AuthAPI{c: c}
	c.Articles = &ArticlesAPI{c: c}
	c.Pages = &PagesAPI{c: c}
	c.Media = &MediaAPI{c: c}
	return c
}

// OnSessionExpired subscribes fn to the SessionExpired event. The navigation
// layer uses this to force the login screen; the HTTP layer itself stays free
// of navigation concerns.
func (c *Client) OnSessionExpired(fn func()) {
	c.onExpired = append(c.onExpired, fn)
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

// doMultipart sends a single-file multipart POST with the payload under
// fieldName.
func (c *Client) doMultipart(ctx context.Context, path, fieldName, filename string, r io.Reader, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(fieldName, filename)
	if err != nil {
		return fmt.Errorf("build multipart: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("stage file: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	token := c.tokens.Token()
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// A 401 on an unauthenticated call (a failed login) is not expiry,
		// there is no held credential to invalidate.
		if token != "" {
			c.sessionExpired(req.Context())
		}
		return &APIError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if resp.StatusCode >= 400 {
		return &APIError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// sessionExpired clears the credential and notifies subscribers.
func (c *Client) sessionExpired(ctx context.Context) {
	if err := c.tokens.Clear(ctx); err != nil {
		c.logger.Error(ctx, "failed to clear expired session", "err", err)
	}
	for _, fn := range c.onExpired {
		fn()
	}
}

// readErrorMessage pulls the backend's {"error": "..."} body, if present.
func readErrorMessage(r io.Reader) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	return body.Error
}
