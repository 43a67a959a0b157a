package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/user/quill-go/apperror"
	"github.com/user/quill-go/config"
)

const testSecret = "test-secret-key-at-least-32-chars-long"

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:       testSecret,
		SessionDuration: 72 * time.Hour,
		BcryptCost:      4,
		CookieSecure:    true,
	}
}

// memUserStore is an in-memory UserStore that enforces email uniqueness like the real schema.
type memUserStore struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*User
	creates int
	err     error // returned by every call when set
}

func newMemUserStore() *memUserStore {
	return &memUserStore{byID: make(map[uuid.UUID]*User)}
}

func (s *memUserStore) CreateUser(ctx context.Context, user *User) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creates++
	if s.err != nil {
		return nil, s.err
	}
	for _, existing := range s.byID {
		if existing.Email == user.Email {
			return nil, apperror.NewConflictError("Email is already registered", nil)
		}
	}
	user.CreatedAt = time.Now().UTC()
	stored := *user
	s.byID[user.ID] = &stored
	return user, nil
}

func (s *memUserStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.byID {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, apperror.NewNotFoundError("user not found", nil)
}

// stubHasher lets tests force hashing failures.
type stubHasher struct {
	err error
}

func (h stubHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + password, nil
}

func (h stubHasher) Verify(password, hash string) bool {
	return hash == "hashed:"+password
}

var errBoom = errors.New("boom")
