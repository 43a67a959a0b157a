// Package auth is responsible for handling authentication logic.
// This includes user registration, login, password hashing, session token
// issuance and verification, and the session cookie itself.
// In a Nest.js analogy, this directory would correspond to an "AuthModule",
// containing services, controllers (handlers in Go), DTOs, and entities.
package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/quill-go/apperror"
)

// AuthService provides authentication-related services.
// Dependencies are injected through the constructor, so tests can swap the
// store or hasher for in-memory doubles.
type AuthService struct {
	store  UserStore
	hasher PasswordHasher

	// dummyHash is verified against when the email is unknown, so both
	// login failures cost one hash comparison.
	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, hasher PasswordHasher) *AuthService {
	return &AuthService{
		store:  store,
		hasher: hasher,
	}
}

// normalizeEmail stores and looks up emails in one canonical form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register hashes the password and persists a new user.
// A duplicate email surfaces as the store's ConflictError.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperror.NewValidationError("Password must be at most 72 bytes", err)
		}
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	user := &User{
		ID:             uuid.New(),
		Name:           req.Name,
		Email:          normalizeEmail(req.Email),
		HashedPassword: hashedPassword,
	}

	createdUser, err := s.store.CreateUser(ctx, user)
	if err != nil {
		if _, ok := apperror.FromError(err); ok {
			return nil, err
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}
	return createdUser, nil
}

// Login checks the credentials and returns the matching user.
// Unknown emails and wrong passwords produce the same AuthError, so the
// response does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*User, error) {
	user, err := s.store.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if apperror.IsNotFound(err) {
			s.hasher.Verify(req.Password, s.unknownUserHash())
			return nil, apperror.NewAuthError("Invalid email or password", nil)
		}
		return nil, err
	}

	if !s.hasher.Verify(req.Password, user.HashedPassword) {
		return nil, apperror.NewAuthError("Invalid email or password", nil)
	}
	return user, nil
}

func (s *AuthService) unknownUserHash() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash("quill-unknown-user")
		if err != nil {
			log.Printf("auth: computing the unknown-user hash: %v", err)
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}
