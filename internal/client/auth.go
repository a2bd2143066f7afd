package client

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// Session is the persisted part of the auth state.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Store persists the session between runs. Load returns nil, nil when nothing is stored.
type Store interface {
	Load() (*Session, error)
	Save(Session) error
	Clear() error
}

// FileStore keeps the session as a JSON file.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	return &session, nil
}

func (s *FileStore) Save(session Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	return os.Rename(tmp, s.path)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// AuthState is the client-side view of the signed-in user. It only gates what the
// client offers, the server never trusts it.
type AuthState struct {
	store Store
	log   *slog.Logger
	now   func() time.Time

	mu    sync.RWMutex
	user  *User
	token string
}

func NewAuthState(store Store, logger *slog.Logger) *AuthState {
	return &AuthState{
		store: store,
		log:   logger,
		now:   time.Now,
	}
}

// Restore loads the stored session. An expired token is discarded together with its session.
func (a *AuthState) Restore() error {
	session, err := a.store.Load()
	if err != nil {
		return err
	}
	if session == nil {
		return nil
	}

	if a.expired(session.Token) {
		a.log.Info("stored session expired, discarding", "userId", session.User.ID)
		return a.store.Clear()
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	user := session.User
	a.user = &user
	a.token = session.Token

	return nil
}

// expired reports whether token is a JWT whose exp lies in the past. Opaque tokens never expire here.
func (a *AuthState) expired(token string) bool {
	if token == "" {
		return false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return !exp.Time.After(a.now())
}

func (a *AuthState) Login(user User, token string) error {
	if err := a.store.Save(Session{User: user, Token: token}); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.user = &user
	a.token = token

	return nil
}

func (a *AuthState) Logout() error {
	a.mu.Lock()
	a.user = nil
	a.token = ""
	a.mu.Unlock()

	return a.store.Clear()
}

// User returns a copy of the current user, nil when signed out.
func (a *AuthState) User() *User {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.user == nil {
		return nil
	}
	u := *a.user
	return &u
}

func (a *AuthState) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.token
}

func (a *AuthState) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.user != nil
}

func (a *AuthState) IsAdmin() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.user != nil && a.user.IsAdmin
}

// CanEditUser allows admins and the user themself.
func (a *AuthState) CanEditUser(id int) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.user == nil {
		return false
	}
	return a.user.IsAdmin || a.user.ID == id
}

func (a *AuthState) CanDeleteUser() bool {
	return a.IsAdmin()
}

func (a *AuthState) CanToggleAdmin() bool {
	return a.IsAdmin()
}

func (a *AuthState) CanManageContent() bool {
	return a.IsAdmin()
}
