package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/user/quill-go/apperror"
)

// UserService provides methods for user profile lookups.
type UserService struct {
	store ProfileStore
}

// NewUserService creates a new UserService.
func NewUserService(store ProfileStore) *UserService {
	return &UserService{store: store}
}

// GetUserProfile retrieves a user's profile by their ID.
func (s *UserService) GetUserProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	return s.store.GetProfile(ctx, userID)
}

// GetUserProfileByParam parses a path parameter before the lookup.
func (s *UserService) GetUserProfileByParam(ctx context.Context, raw string) (*Profile, error) {
	userID, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid user id", err)
	}
	return s.store.GetProfile(ctx, userID)
}
