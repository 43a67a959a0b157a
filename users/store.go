package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/quill-go/apperror"
)

// ProfileStore reads user profiles.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)
}

// PgProfileStore is the PostgreSQL implementation of ProfileStore.
type PgProfileStore struct {
	db *pgxpool.Pool
}

// NewPgProfileStore creates a new PgProfileStore.
func NewPgProfileStore(db *pgxpool.Pool) *PgProfileStore {
	return &PgProfileStore{db: db}
}

// GetProfile retrieves a user's profile by their ID.
func (s *PgProfileStore) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	query := `
		SELECT u.id, u.name, u.email, u.created_at, COUNT(p.id)
		FROM users u
		LEFT JOIN posts p ON p.author_id = u.id
		WHERE u.id = $1
		GROUP BY u.id
	`
	var profile Profile
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.Name,
		&profile.Email,
		&profile.CreatedAt,
		&profile.PostCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("user with ID %s not found", userID), nil)
		}
		return nil, apperror.NewDatabaseError("Failed to get user profile", err)
	}
	return &profile, nil
}
