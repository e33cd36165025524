package session

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	goerrors "github.com/goliatone/go-errors"
)

// MemoryTokenStore keeps the token in process memory. It does not survive a
// restart; use it for tests and embedded scenarios.
type MemoryTokenStore struct {
	mu      sync.Mutex
	token   string
	present bool
}

// NewMemoryTokenStore returns an empty in-memory store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// Seed installs a token as if it had been persisted by a previous run.
func (s *MemoryTokenStore) Seed(token string) *MemoryTokenStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.present = token != ""
	return s
}

func (s *MemoryTokenStore) Get(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.present {
		return "", ErrNoToken
	}
	return s.token, nil
}

func (s *MemoryTokenStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.present = true
	return nil
}

func (s *MemoryTokenStore) Remove(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.present = false
	return nil
}

// FileTokenStore persists the token in a single file so it survives a full
// process restart, the desktop analogue of browser local storage.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore returns a store backed by the file at path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Get(context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", goerrors.Wrap(err, goerrors.CategoryOperation, "read token file")
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (s *FileTokenStore) Set(_ context.Context, token string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryOperation, "create token directory")
		}
	}

	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "write token file")
	}
	return nil
}

func (s *FileTokenStore) Remove(context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "remove token file")
	}
	return nil
}

var (
	_ TokenStore = (*MemoryTokenStore)(nil)
	_ TokenStore = (*FileTokenStore)(nil)
)
