// Package authgate talks to the external identity service. Registration,
// login and token issuance all live there; this client only proxies them
// and verifies bearer tokens via introspection.
package authgate

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/nathanpradana/sportsdash/internal/domain/user"
	"github.com/nathanpradana/sportsdash/internal/platform/cache"
	"github.com/nathanpradana/sportsdash/internal/usecase"
)

type Client struct {
	httpClient    *http.Client
	loginURL      string
	registerURL   string
	introspectURL string
	verified      *cache.Loader
	logger        *slog.Logger
}

func NewClient(httpClient *http.Client, baseURL string, verified *cache.Loader, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		httpClient:    httpClient,
		loginURL:      buildURL(baseURL, "/auth/login"),
		registerURL:   buildURL(baseURL, "/auth/register"),
		introspectURL: buildURL(baseURL, "/auth/introspect"),
		verified:      verified,
		logger:        logger,
	}
}

// Session is an issued credential with its owner.
type Session struct {
	AccessToken string
	Principal   user.Principal
}

func (c *Client) Login(ctx context.Context, username, password string) (Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Session{}, fmt.Errorf("%w: username and password are required", usecase.ErrInvalidInput)
	}

	return c.postCredentials(ctx, c.loginURL, credentialRequest{
		Username: username,
		Password: password,
	})
}

func (c *Client) Register(ctx context.Context, username, email, password string) (Session, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return Session{}, fmt.Errorf("%w: username, email and password are required", usecase.ErrInvalidInput)
	}

	return c.postCredentials(ctx, c.registerURL, credentialRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
}

// VerifyAccessToken resolves a bearer token to its principal via
// introspection. Verified principals are cached briefly so a burst of
// requests from one session does not hammer the identity service.
func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	if c.verified == nil {
		return c.introspect(ctx, token)
	}

	encoded, err := c.verified.GetOrLoad(ctx, token, func(ctx context.Context) ([]byte, error) {
		principal, err := c.introspect(ctx, token)
		if err != nil {
			return nil, err
		}
		return sonic.Marshal(principal)
	})
	if err != nil {
		return user.Principal{}, err
	}

	var principal user.Principal
	if err := sonic.Unmarshal(encoded, &principal); err != nil {
		return user.Principal{}, fmt.Errorf("unmarshal cached principal: %w", err)
	}

	return principal, nil
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	body, status, err := c.post(ctx, c.introspectURL, introspectRequest{Token: token})
	if err != nil {
		return user.Principal{}, err
	}

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return user.Principal{}, fmt.Errorf("%w: introspection denied", usecase.ErrUnauthorized)
	}
	if status != http.StatusOK {
		c.logger.WarnContext(ctx, "identity introspection non-200", "status_code", status)
		return user.Principal{}, fmt.Errorf("%w: introspection failed with status %d", usecase.ErrDependencyUnavailable, status)
	}

	var decoded introspectResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return user.Principal{}, fmt.Errorf("unmarshal introspect response: %w", err)
	}

	if !decoded.Active {
		return user.Principal{}, fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, fmt.Errorf("invalid introspect response: user_id is empty")
	}

	return user.Principal{
		UserID:   decoded.UserID,
		Username: decoded.Username,
		Email:    decoded.Email,
	}, nil
}

func (c *Client) postCredentials(ctx context.Context, url string, payload credentialRequest) (Session, error) {
	body, status, err := c.post(ctx, url, payload)
	if err != nil {
		return Session{}, err
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return Session{}, fmt.Errorf("%w: credentials rejected", usecase.ErrUnauthorized)
	case status == http.StatusBadRequest || status == http.StatusConflict:
		return Session{}, fmt.Errorf("%w: identity service rejected request", usecase.ErrInvalidInput)
	case status != http.StatusOK && status != http.StatusCreated:
		c.logger.WarnContext(ctx, "identity request non-200", "status_code", status)
		return Session{}, fmt.Errorf("%w: identity service status %d", usecase.ErrDependencyUnavailable, status)
	}

	var decoded credentialResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return Session{}, fmt.Errorf("unmarshal credential response: %w", err)
	}
	if strings.TrimSpace(decoded.AccessToken) == "" {
		return Session{}, fmt.Errorf("invalid credential response: access_token is empty")
	}

	return Session{
		AccessToken: decoded.AccessToken,
		Principal: user.Principal{
			UserID:   decoded.UserID,
			Username: decoded.Username,
			Email:    decoded.Email,
		},
	}, nil
}

func (c *Client) post(ctx context.Context, url string, payload any) ([]byte, int, error) {
	encoded, err := sonic.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal identity request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return nil, 0, fmt.Errorf("create identity request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: request identity service: %v", usecase.ErrDependencyUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, 0, fmt.Errorf("read identity response: %w", err)
	}

	return body, resp.StatusCode, nil
}

type credentialRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

type credentialResponse struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active   bool   `json:"active"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func buildURL(baseURL, path string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return baseURL + path
}
