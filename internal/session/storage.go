package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/me/clinidash/pkg/model"
)

const (
	tokenFileName    = "token"
	identityFileName = "identity.json"
)

// Storage persists the two session entries (bearer token and identity)
// across process restarts. Implementations must write both entries in a
// single Save call so a restart never observes one without the other.
type Storage interface {
	// Load returns the persisted token and identity. A missing or
	// malformed entry is reported as ok=false, never as an error.
	Load() (token string, identity model.Identity, ok bool)
	// Save persists both entries.
	Save(token string, identity model.Identity) error
	// Clear removes both entries. Clearing empty storage is a no-op.
	Clear() error
}

// FileStorage keeps the session under a directory (default ~/.clinidash),
// the CLI's analog of browser local storage.
type FileStorage struct {
	dir string
}

// NewFileStorage creates file-backed storage rooted at dir.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

// DefaultDir returns ~/.clinidash.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".clinidash"), nil
}

func (s *FileStorage) Load() (string, model.Identity, bool) {
	tok, err := os.ReadFile(filepath.Join(s.dir, tokenFileName))
	if err != nil {
		return "", model.Identity{}, false
	}
	token := strings.TrimSpace(string(tok))
	if token == "" {
		return "", model.Identity{}, false
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, identityFileName))
	if err != nil {
		return "", model.Identity{}, false
	}
	var id model.Identity
	if err := json.Unmarshal(raw, &id); err != nil || id.Email == "" {
		return "", model.Identity{}, false
	}
	return token, id, true
}

func (s *FileStorage) Save(token string, identity model.Identity) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	idJSON, err := json.MarshalIndent(identity, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	// Identity first, token last: a token on disk implies the identity it
	// was derived from is already there.
	if err := os.WriteFile(filepath.Join(s.dir, identityFileName), idJSON, 0o600); err != nil {
		return fmt.Errorf("write identity: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, tokenFileName), []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (s *FileStorage) Clear() error {
	// Token first, mirroring Save's ordering.
	if err := os.Remove(filepath.Join(s.dir, tokenFileName)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token: %w", err)
	}
	if err := os.Remove(filepath.Join(s.dir, identityFileName)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove identity: %w", err)
	}
	return nil
}

// MemStorage is an in-memory Storage for tests.
type MemStorage struct {
	token    string
	identity model.Identity
	present  bool
}

func (m *MemStorage) Load() (string, model.Identity, bool) {
	if !m.present {
		return "", model.Identity{}, false
	}
	return m.token, m.identity, true
}

func (m *MemStorage) Save(token string, identity model.Identity) error {
	m.token = token
	m.identity = identity
	m.present = true
	return nil
}

func (m *MemStorage) Clear() error {
	m.token = ""
	m.identity = model.Identity{}
	m.present = false
	return nil
}
