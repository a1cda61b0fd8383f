package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/teamboard/internal/filex"
)

const sessionFileName = "session"

// TokenStore persists the session token between client runs.
type TokenStore struct {
	path string
}

// NewTokenStore keeps the token in <dir>/session, creating dir if needed.
func NewTokenStore(dir string) (*TokenStore, error) {
	d, err := filex.EnsureSubdDir(dir)
	if err != nil {
		return nil, err
	}
	return &TokenStore{path: filepath.Join(d, sessionFileName)}, nil
}

func (s *TokenStore) Path() string {
	return s.path
}

// Load returns the saved token, or "" when there is none.
func (s *TokenStore) Load() (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read session: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *TokenStore) Save(token string) error {
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear removes the saved token. A missing file is not an error.
func (s *TokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
