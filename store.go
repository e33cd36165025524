package session

import (
	"context"
	"sync"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

// Store is the single source of truth for authentication state and the only
// component permitted to mutate it. Construct one per running application and
// pass it by reference; it is safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	state    State
	tokens   TokenStore
	identity IdentityClient
	logger   Logger
	activity ActivitySink
	now      func() time.Time

	initialized bool
	// resolveSeq implements "latest request wins": every resolution takes the
	// next sequence under the lock, and a completion whose sequence is no
	// longer current is discarded. Logout and login bump it too, so an
	// in-flight resolution can never clobber a newer session change.
	resolveSeq uint64
}

// New returns a session Store wired to the given persistence adapter and
// identity client.
func New(tokens TokenStore, identity IdentityClient) *Store {
	return &Store{
		tokens:   tokens,
		identity: identity,
		logger:   defLogger{},
		activity: noopActivitySink{},
		now:      time.Now,
		state:    State{Initializing: true},
	}
}

func (s *Store) WithLogger(logger Logger) *Store {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// WithActivitySink configures an ActivitySink for emitting session events.
func (s *Store) WithActivitySink(sink ActivitySink) *Store {
	s.activity = normalizeActivitySink(sink)
	return s
}

// WithClock injects a custom clock (useful for tests).
func (s *Store) WithClock(clock func() time.Time) *Store {
	if clock != nil {
		s.now = clock
	}
	return s
}

// State returns a snapshot of the current session state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Initialize restores a persisted token and resolves the user it belongs to.
// It runs once per Store; repeated calls are no-ops. Whatever the outcome,
// the session always leaves the initializing phase.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return nil
	}
	s.initialized = true
	s.mu.Unlock()

	token, err := s.tokens.Get(ctx)
	if err != nil && !IsNoToken(err) {
		// The adapter itself failed. Finish initialization anonymous but
		// surface the failure so the caller can report it.
		s.mu.Lock()
		s.state.Initializing = false
		s.mu.Unlock()
		s.logger.Error("token store read failed", "error", err)
		return goerrors.Wrap(err, goerrors.CategoryOperation, "restore persisted token")
	}

	if err != nil || token == "" {
		s.mu.Lock()
		s.state.Initializing = false
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	s.state.Token = token
	s.mu.Unlock()

	user, ferr := s.FetchUser(ctx)
	if ferr == nil && user != nil {
		s.emit(ctx, ActivityEventSessionRestored, user, nil)
	}
	return ferr
}

// FetchUser resolves the current user. With a tokenOverride it adopts that
// token first; otherwise it uses the in-memory token. An authorization
// rejection forces a logout; any other failure leaves the session untouched
// so a transient outage never destroys a possibly-valid session.
func (s *Store) FetchUser(ctx context.Context, tokenOverride ...string) (*User, error) {
	var override string
	if len(tokenOverride) > 0 {
		override = tokenOverride[0]
	}

	s.mu.Lock()
	token := override
	if token == "" {
		token = s.state.Token
	}
	if token == "" {
		s.state.User = nil
		s.state.Initializing = false
		s.mu.Unlock()
		return nil, nil
	}

	if override != "" {
		s.state.Token = override
	}
	s.state.Loading = true
	s.resolveSeq++
	seq := s.resolveSeq
	s.mu.Unlock()

	user, err := s.identity.FetchCurrentUser(ctx, token)

	s.mu.Lock()
	if seq != s.resolveSeq {
		s.mu.Unlock()
		s.logger.Debug("discarding stale resolution", "seq", seq)
		return nil, nil
	}
	s.state.Loading = false
	s.state.Initializing = false

	var forced bool
	switch {
	case err == nil:
		s.state.User = user
	case IsAuthError(err):
		s.state.User = nil
		s.state.Token = ""
		forced = true
	}
	s.mu.Unlock()

	if forced {
		if rerr := s.tokens.Remove(ctx); rerr != nil && !IsNoToken(rerr) {
			s.logger.Warn("token purge failed after forced logout", "error", rerr)
		}
		s.emit(ctx, ActivityEventForcedLogout, nil, map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	if err != nil {
		s.logger.Error("user resolution failed", "error", err)
		s.emit(ctx, ActivityEventRefreshFailure, nil, map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	return user, nil
}

// RefreshUser re-pulls the current user's record, e.g. after a profile edit.
func (s *Store) RefreshUser(ctx context.Context) (*User, error) {
	return s.FetchUser(ctx)
}

// Login installs a session after a successful credential exchange performed
// elsewhere. The token is persisted first, then the canonical user record is
// hydrated from the identity service; if hydration fails for any reason the
// caller-supplied record is kept so the UI is not left without identity
// information. An empty token is rejected before any side effect; use
// ClearSession for an explicit local reset.
func (s *Store) Login(ctx context.Context, user *User, token string) error {
	if token == "" {
		return ErrMissingToken
	}

	if err := s.tokens.Set(ctx, token); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "persist session token")
	}

	hydrated, err := s.FetchUser(ctx, token)
	if err != nil || hydrated == nil {
		s.mu.Lock()
		s.resolveSeq++
		s.state.User = user
		s.state.Token = token
		s.state.Loading = false
		s.state.Initializing = false
		s.mu.Unlock()

		// The forced-logout path may have purged the freshly persisted
		// token; re-persist so storage and memory agree after the fallback.
		if serr := s.tokens.Set(ctx, token); serr != nil {
			s.logger.Warn("token re-persist failed during login fallback", "error", serr)
		}

		meta := map[string]any{}
		if err != nil {
			meta["error"] = err.Error()
		}
		s.emit(ctx, ActivityEventLoginFallback, user, meta)
		return nil
	}

	s.emit(ctx, ActivityEventLoginSuccess, hydrated, nil)
	return nil
}

// ClearSession resets the session to its initial empty shape without calling
// the identity service.
func (s *Store) ClearSession(ctx context.Context) {
	s.clearLocal(ctx)
}

// Logout ends the session. The remote invalidation is best-effort: local
// cleanup runs on every exit path, so the session is cleared even when the
// identity service is unreachable. A transport failure is returned for the
// caller to surface but never blocks the cleanup.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	token := s.state.Token
	user := s.state.User
	s.mu.Unlock()

	var endErr error
	if token != "" {
		if err := s.identity.EndSession(ctx, token); err != nil {
			s.logger.Warn("remote session invalidation failed", "error", err)
			endErr = wrapTransport(err, "end remote session")
		}
	}

	s.clearLocal(ctx)
	s.emit(ctx, ActivityEventLogout, user, nil)
	return endErr
}

func (s *Store) clearLocal(ctx context.Context) {
	s.mu.Lock()
	s.resolveSeq++
	s.state.User = nil
	s.state.Token = ""
	s.state.Loading = false
	s.state.Initializing = false
	s.mu.Unlock()

	if err := s.tokens.Remove(ctx); err != nil && !IsNoToken(err) {
		s.logger.Warn("persisted token removal failed", "error", err)
	}
}

func (s *Store) emit(ctx context.Context, eventType ActivityEventType, user *User, metadata map[string]any) {
	event := ActivityEvent{
		EventType: eventType,
		Metadata:  metadata,
	}

	if user != nil {
		event.UserID = user.ID.String()
		role := user.Role
		event.Role = &role
	}

	if event.Metadata == nil {
		event.Metadata = map[string]any{}
	}

	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now()
	}

	if err := normalizeActivitySink(s.activity).Record(ctx, event); err != nil {
		s.logger.Warn("activity sink record error: %v", err)
	}
}
