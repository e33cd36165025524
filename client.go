package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

const defaultRequestTimeout = 10 * time.Second

// HTTPIdentityClient talks to the remote identity API over REST. It maps
// authorization-denied statuses to auth-category errors and everything else
// to transport failures, per the Store's forced-logout contract.
type HTTPIdentityClient struct {
	baseURL string
	client  *http.Client
	logger  Logger
}

// NewHTTPIdentityClient returns an identity client for the configured API.
func NewHTTPIdentityClient(cfg Config) *HTTPIdentityClient {
	timeout := cfg.GetRequestTimeout()
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &HTTPIdentityClient{
		baseURL: strings.TrimRight(cfg.GetIdentityBaseURL(), "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  defLogger{},
	}
}

func (c *HTTPIdentityClient) WithLogger(logger Logger) *HTTPIdentityClient {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// WithHTTPClient swaps the underlying HTTP client (custom transports, tests).
func (c *HTTPIdentityClient) WithHTTPClient(client *http.Client) *HTTPIdentityClient {
	if client != nil {
		c.client = client
	}
	return c
}

// FetchCurrentUser implements IdentityClient.
func (c *HTTPIdentityClient) FetchCurrentUser(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/me", nil)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "build identity request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("identity request failed", "error", err)
		return nil, wrapTransport(err, "fetch current user")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrSessionExpired
	case resp.StatusCode != http.StatusOK:
		c.logger.Error("identity service returned unexpected status", "status", resp.StatusCode)
		return nil, identityUnavailable(resp.StatusCode)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		// Malformed payloads are neither auth nor transport failures; the
		// caller logs them and the session is left untouched.
		return nil, goerrors.Wrap(err, goerrors.CategoryBadInput, "decode identity payload")
	}

	return &user, nil
}

// EndSession implements IdentityClient.
func (c *HTTPIdentityClient) EndSession(ctx context.Context, token string) error {
	if token == "" {
		return ErrMissingToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/logout", nil)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "build logout request")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return wrapTransport(err, "end remote session")
	}
	defer resp.Body.Close()

	// An already-expired token is a success from the caller's perspective.
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusBadRequest {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return nil
	}

	return identityUnavailable(resp.StatusCode)
}

var _ IdentityClient = (*HTTPIdentityClient)(nil)

func (c *HTTPIdentityClient) String() string {
	return fmt.Sprintf("identity client for %s", c.baseURL)
}
