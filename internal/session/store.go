// Package session holds the client's bearer credential. The store is
// explicit state injected into whoever needs it, and persists to a single
// fixed-name file so a new process starts authenticated exactly when the
// previous one left a credential behind.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
)

// FileName is the fixed credential file name inside the store directory.
const FileName = "session.json"

type persisted struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
}

// Store guards the current credential: one writer on login, logout or
// expiry, any number of readers attaching it to requests.
type Store struct {
	mu       sync.RWMutex
	path     string
	token    string
	username string
}

// Open loads the credential file under dir if one exists. A missing file
// simply starts the store unauthenticated.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("session directory is required")
	}

	s := &Store{path: filepath.Join(dir, FileName)}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var p persisted
	if err := sonic.Unmarshal(raw, &p); err != nil {
		// A corrupt session file is treated as logged out.
		return s, nil
	}
	s.token = p.AccessToken
	s.username = p.Username

	return s, nil
}

// Token returns the stored credential and whether one is present.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token, s.token != ""
}

// Authenticated reports whether a credential is currently held.
func (s *Store) Authenticated() bool {
	_, ok := s.Token()
	return ok
}

// Username returns the stored account name, if any.
func (s *Store) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.username
}

// Save stores a fresh credential and persists it.
func (s *Store) Save(token, username string) error {
	if token == "" {
		return fmt.Errorf("token is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.username = username

	raw, err := sonic.Marshal(persisted{AccessToken: token, Username: username})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

// Clear drops the credential and removes the file. Called on logout and
// whenever the server reports the credential expired.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.username = ""

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}

	return nil
}
