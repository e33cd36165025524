package session

import (
	"context"
	"fmt"
	"time"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// TokenStore persists the opaque session token across process restarts.
// Implementations report an empty store with ErrNoToken, never a plain error.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Remove(ctx context.Context) error
}

// IdentityClient is the boundary to the remote identity service.
type IdentityClient interface {
	// FetchCurrentUser resolves the user owning the token. Rejected tokens
	// yield an auth-category error (see IsAuthError); anything else is a
	// transport failure.
	FetchCurrentUser(ctx context.Context, token string) (*User, error)
	// EndSession invalidates the token remotely, best-effort. Its failure
	// must never prevent local logout.
	EndSession(ctx context.Context, token string) error
}

// Config holds session kit options
type Config interface {
	GetIdentityBaseURL() string
	GetRequestTimeout() time.Duration
	GetLoginPath() string
	GetTokenFilePath() string
	GetRedisAddr() string
	GetRedisKey() string
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] SESSION "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] SESSION "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] SESSION "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] SESSION "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
