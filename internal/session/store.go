// Package session owns the persisted session token.
//
// The token is an opaque string issued by the backend at sign-in. It is
// client-side bookkeeping only: it answers "is a session plausible" and is
// never attached to outgoing requests, which ride on the ambient session
// cookie instead.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/stellarhub/stellarctl/internal/errors"
)

// tokenFile is the single key of durable client-local persistence.
const tokenFile = "token.json"

// Store persists the session token under a state directory.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the default state directory, ~/.stellarhub.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFileReadFailed, "cannot resolve home directory", err)
	}
	return filepath.Join(home, ".stellarhub"), nil
}

// IsAuthenticated reports whether a plausible session exists and returns the
// stored token. It never fails: a missing file, an unreadable directory, or a
// corrupt entry all read as "not authenticated".
func (s *Store) IsAuthenticated() (string, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return "", false
	}

	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return "", false
	}
	if token == "" {
		return "", false
	}
	return token, true
}

// Authenticate persists the token, overwriting any previous value.
func (s *Store) Authenticate(token string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeSessionWriteFailed, "cannot create state directory", err)
	}

	data, err := json.Marshal(token)
	if err != nil {
		return errors.Wrap(errors.ErrCodeSessionWriteFailed, "cannot encode token", err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeSessionWriteFailed, "cannot write token file", err)
	}
	return nil
}

// SignOut removes the persisted token. Removing an absent token succeeds.
// Callers that hold an identity context must reset it themselves.
func (s *Store) SignOut() error {
	err := os.Remove(filepath.Join(s.dir, tokenFile))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeSessionRemoveFailed, "cannot remove token file", err)
	}
	return nil
}
