// internal/domain/user/store.go
package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/lumina-storefront/internal/infrastructure/storage"
	"github.com/your-org/lumina-storefront/internal/pkg/auth"
)

// Auth failures are surfaced as distinguishable errors, not generic ones, so
// the caller can render field-specific messages.
var (
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

const directoryKey = "users"

func sessionKey(sessionID string) string {
	return "user:" + sessionID
}

// Store owns the user directory and the per-session active user. It is
// constructed once at process start and is the single writer of both.
type Store struct {
	storage   storage.Store
	passwords *auth.PasswordManager
	mu        sync.Mutex
}

// NewStore creates a new auth store.
func NewStore(st storage.Store, passwords *auth.PasswordManager) *Store {
	return &Store{
		storage:   st,
		passwords: passwords,
	}
}

// Register creates a new account and signs the session in as it. The email
// must not already exist in the directory; matching is case-sensitive and
// exact.
func (s *Store) Register(ctx context.Context, sessionID, email, password, name string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	directory, err := s.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range directory {
		if u.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := User{
		ID:             uuid.New().String(),
		Email:          email,
		Name:           name,
		Password:       hash,
		CreatedAt:      time.Now().UTC(),
		Wishlist:       []string{},
		RecentlyViewed: []string{},
		Addresses:      []Address{},
	}

	directory = append(directory, newUser)
	if err := s.saveDirectory(ctx, directory); err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, sessionID, newUser); err != nil {
		return nil, err
	}

	sanitized := newUser.Sanitized()
	return &sanitized, nil
}

// Login matches the credentials against the directory and signs the session
// in as the matched user.
func (s *Store) Login(ctx context.Context, sessionID, email, password string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	directory, err := s.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range directory {
		if u.Email != email {
			continue
		}
		if err := s.passwords.Verify(password, u.Password); err != nil {
			// Same failure as an unknown email.
			return nil, ErrInvalidCredentials
		}

		if err := s.saveSession(ctx, sessionID, u); err != nil {
			return nil, err
		}

		sanitized := u.Sanitized()
		return &sanitized, nil
	}

	return nil, ErrInvalidCredentials
}

// Logout clears the session unconditionally; logging out an anonymous
// session is a no-op.
func (s *Store) Logout(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Delete(ctx, sessionKey(sessionID)); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Current returns the session's active user, or nil when the session is
// anonymous. A persisted session is re-validated against the directory by
// user id, mirroring how cart rehydration re-validates against the catalog:
// if the user no longer exists the session restores to Anonymous.
func (s *Store) Current(ctx context.Context, sessionID string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current(ctx, sessionID)
}

// State returns the session as the two-state auth view.
func (s *Store) State(ctx context.Context, sessionID string) (AuthState, error) {
	u, err := s.Current(ctx, sessionID)
	if err != nil {
		return AuthState{}, err
	}
	return AuthState{User: u, IsAuthenticated: u != nil}, nil
}

// UpdateUser overwrites the active user's profile fields. Identity fields
// (id, email, password, creation time) are preserved from the stored record;
// calling while anonymous is rejected with ErrNotAuthenticated.
func (s *Store) UpdateUser(ctx context.Context, sessionID string, updated User) (*User, error) {
	return s.mutateCurrent(ctx, sessionID, func(u *User) error {
		u.Name = updated.Name
		u.Wishlist = updated.Wishlist
		u.RecentlyViewed = updated.RecentlyViewed
		u.Addresses = updated.Addresses
		return nil
	})
}

// UpdateWith applies fn to the active user and persists the result. It is
// the extension point for collaborators (wishlist, recently viewed) that
// mutate slices of the user record; fn returning an error aborts the write.
func (s *Store) UpdateWith(ctx context.Context, sessionID string, fn func(*User) error) (*User, error) {
	return s.mutateCurrent(ctx, sessionID, fn)
}

// mutateCurrent applies fn to the session's user and writes the result to
// both the directory and the session record, keeping the two views of the
// same account consistent.
func (s *Store) mutateCurrent(ctx context.Context, sessionID string, fn func(*User) error) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.current(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotAuthenticated
	}

	directory, err := s.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}

	for i := range directory {
		if directory[i].ID != current.ID {
			continue
		}

		if err := fn(&directory[i]); err != nil {
			return nil, err
		}

		if err := s.saveDirectory(ctx, directory); err != nil {
			return nil, err
		}
		if err := s.saveSession(ctx, sessionID, directory[i]); err != nil {
			return nil, err
		}

		sanitized := directory[i].Sanitized()
		return &sanitized, nil
	}

	// Directory entry vanished between current() and here; treat the
	// session as stale.
	return nil, ErrNotAuthenticated
}

// current assumes s.mu is held.
func (s *Store) current(ctx context.Context, sessionID string) (*User, error) {
	raw, err := s.storage.Get(ctx, sessionKey(sessionID))
	if err == storage.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var sessionUser User
	if err := json.Unmarshal([]byte(raw), &sessionUser); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	directory, err := s.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range directory {
		if u.ID == sessionUser.ID {
			sanitized := u.Sanitized()
			return &sanitized, nil
		}
	}

	// The directory no longer knows this user; drop the stale session.
	if err := s.storage.Delete(ctx, sessionKey(sessionID)); err != nil {
		return nil, fmt.Errorf("clear stale session: %w", err)
	}
	return nil, nil
}

func (s *Store) loadDirectory(ctx context.Context) ([]User, error) {
	raw, err := s.storage.Get(ctx, directoryKey)
	if err == storage.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load user directory: %w", err)
	}

	var directory []User
	if err := json.Unmarshal([]byte(raw), &directory); err != nil {
		return nil, fmt.Errorf("decode user directory: %w", err)
	}
	return directory, nil
}

func (s *Store) saveDirectory(ctx context.Context, directory []User) error {
	data, err := json.Marshal(directory)
	if err != nil {
		return fmt.Errorf("encode user directory: %w", err)
	}
	if err := s.storage.Set(ctx, directoryKey, string(data)); err != nil {
		return fmt.Errorf("persist user directory: %w", err)
	}
	return nil
}

func (s *Store) saveSession(ctx context.Context, sessionID string, u User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.storage.Set(ctx, sessionKey(sessionID), string(data)); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}
