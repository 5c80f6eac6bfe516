package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
	"gopkg.in/yaml.v2"

	"stagelink/internal/models"
)

// Store persists the two session keys, the bearer token and the cached
// user profile, so a restart can rehydrate without a network round
// trip. The cached user is kept JSON-serialized inside the YAML file,
// mirroring how the browser client mirrored it into local storage.
type Store struct {
	path string

	mu    sync.Mutex
	token string
	user  *models.User
}

type sessionFile struct {
	Token string `yaml:"token,omitempty"`
	User  string `yaml:"user,omitempty"`
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the session file. A missing file is an empty session. A
// cached user that no longer parses is dropped and the file rewritten;
// a stored token is still usable on its own.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session file: %w", err)
	}

	var f sessionFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse session file: %w", err)
	}
	s.token = f.Token
	s.user = nil
	if f.User != "" {
		var u models.User
		if err := json.Unmarshal([]byte(f.User), &u); err == nil && u.ID != 0 {
			s.user = &u
		} else {
			return s.writeLocked()
		}
	}
	return nil
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// SetSession stores a fresh token and profile after login/register.
func (s *Store) SetSession(token string, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	return s.writeLocked()
}

// SetUser refreshes the cached profile without touching the token.
func (s *Store) SetUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	return s.writeLocked()
}

// Clear wipes the session on logout or account deletion.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// TokenExpired inspects the token's exp claim without verifying the
// signature; the client has no signing key and the backend is the
// authority anyway. Opaque tokens and tokens without exp are treated as
// live and left for the backend to reject.
func (s *Store) TokenExpired(now time.Time) bool {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token == "" {
		return true
	}
	claims := jwt.MapClaims{}
	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return now.After(time.Unix(int64(exp), 0))
}

func (s *Store) writeLocked() error {
	f := sessionFile{Token: s.token}
	if s.user != nil {
		data, err := json.Marshal(s.user)
		if err != nil {
			return fmt.Errorf("marshal cached user: %w", err)
		}
		f.User = string(data)
	}

	out, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal session file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, out, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}
