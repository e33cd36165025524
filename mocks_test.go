package session_test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	session "github.com/edukit/go-session"
)

// mockTokenStore is a scriptable persistence adapter that records the
// operations run against it.
type mockTokenStore struct {
	mu        sync.Mutex
	token     string
	present   bool
	getErr    error
	setErr    error
	removeErr error

	gets    int
	sets    int
	removes int
}

func newMockTokenStore(seed string) *mockTokenStore {
	return &mockTokenStore{
		token:   seed,
		present: seed != "",
	}
}

func (m *mockTokenStore) Get(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if m.getErr != nil {
		return "", m.getErr
	}
	if !m.present {
		return "", session.ErrNoToken
	}
	return m.token, nil
}

func (m *mockTokenStore) Set(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.token = token
	m.present = true
	return nil
}

func (m *mockTokenStore) Remove(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removes++
	if m.removeErr != nil {
		return m.removeErr
	}
	m.token = ""
	m.present = false
	return nil
}

func (m *mockTokenStore) stored() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.present
}

// mockIdentityClient scripts per-call behavior for user resolution and
// remote session termination.
type mockIdentityClient struct {
	mu         sync.Mutex
	fetchCalls int
	endCalls   int

	// fetch receives the 1-based call number so tests can vary behavior
	// across overlapping resolutions.
	fetch func(call int, token string) (*session.User, error)
	end   func(token string) error
}

func (m *mockIdentityClient) FetchCurrentUser(_ context.Context, token string) (*session.User, error) {
	m.mu.Lock()
	m.fetchCalls++
	call := m.fetchCalls
	fetch := m.fetch
	m.mu.Unlock()

	if fetch == nil {
		return nil, session.ErrIdentityUnavailable
	}
	return fetch(call, token)
}

func (m *mockIdentityClient) EndSession(_ context.Context, token string) error {
	m.mu.Lock()
	m.endCalls++
	end := m.end
	m.mu.Unlock()

	if end == nil {
		return nil
	}
	return end(token)
}

func (m *mockIdentityClient) fetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchCalls
}

func (m *mockIdentityClient) endCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.endCalls
}

// recordingSink collects every activity event for assertions.
type recordingSink struct {
	mu     sync.Mutex
	events []session.ActivityEvent
}

func (s *recordingSink) Record(_ context.Context, event session.ActivityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingSink) types() []session.ActivityEventType {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]session.ActivityEventType, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.EventType)
	}
	return out
}

// silentLogger keeps test output clean.
type silentLogger struct{}

func (silentLogger) Debug(string, ...any) {}
func (silentLogger) Info(string, ...any)  {}
func (silentLogger) Warn(string, ...any)  {}
func (silentLogger) Error(string, ...any) {}

func testUser(role session.Role) *session.User {
	return &session.User{
		ID:        uuid.New(),
		Role:      role,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
		Email:     "ada@example.com",
	}
}
