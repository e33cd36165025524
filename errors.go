package session

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	// TextCodeSessionExpired marks tokens rejected by the identity service
	TextCodeSessionExpired = "SESSION_EXPIRED"
	// TextCodeIdentityUnavailable marks transport or server failures
	TextCodeIdentityUnavailable = "IDENTITY_UNAVAILABLE"
	// TextCodeMissingToken marks operations invoked without a required token
	TextCodeMissingToken = "MISSING_TOKEN"
	// TextCodeTokenNotFound marks an empty persistence adapter
	TextCodeTokenNotFound = "TOKEN_NOT_FOUND"
)

// ErrSessionExpired is returned when the identity service rejects the token.
// It is the only failure that destroys session state (forced logout).
var ErrSessionExpired = goerrors.New("session token rejected by identity service", goerrors.CategoryAuth).
	WithTextCode(TextCodeSessionExpired).
	WithCode(goerrors.CodeUnauthorized)

// ErrIdentityUnavailable is returned for network and server failures. The
// session is preserved; the caller decides whether to surface it.
var ErrIdentityUnavailable = goerrors.New("identity service unavailable", goerrors.CategoryOperation).
	WithTextCode(TextCodeIdentityUnavailable).
	WithCode(goerrors.CodeInternal)

// ErrMissingToken is returned before any network call when an operation that
// requires a token is invoked without one.
var ErrMissingToken = goerrors.New("a non-empty session token is required", goerrors.CategoryValidation).
	WithTextCode(TextCodeMissingToken).
	WithCode(goerrors.CodeBadRequest)

// ErrNoToken signals an empty token store. It is an expected outcome during
// initialization, not a failure.
var ErrNoToken = goerrors.New("no persisted session token", goerrors.CategoryNotFound).
	WithTextCode(TextCodeTokenNotFound).
	WithCode(goerrors.CodeNotFound)

// IsAuthError reports whether err is an authorization rejection from the
// identity service, the trigger for a forced logout.
func IsAuthError(err error) bool {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return false
	}
	return rich.Category == goerrors.CategoryAuth
}

// IsTransportError reports whether err is a network or server failure that
// must not destroy a possibly-valid session.
func IsTransportError(err error) bool {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return false
	}
	return rich.Category == goerrors.CategoryOperation && rich.TextCode == TextCodeIdentityUnavailable
}

// IsNoToken reports whether err means the token store is simply empty.
func IsNoToken(err error) bool {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return false
	}
	return rich.TextCode == TextCodeTokenNotFound
}

// identityUnavailable returns a per-call copy of ErrIdentityUnavailable with
// the response status attached. The sentinel itself is never mutated.
func identityUnavailable(status int) error {
	clone := ErrIdentityUnavailable.Clone()
	if clone == nil {
		return ErrIdentityUnavailable
	}
	clone.Source = ErrIdentityUnavailable
	return clone.WithMetadata(map[string]any{"status": status})
}

func wrapTransport(err error, msg string) *goerrors.Error {
	return goerrors.Wrap(err, goerrors.CategoryOperation, msg).
		WithTextCode(TextCodeIdentityUnavailable).
		WithCode(goerrors.CodeInternal)
}
