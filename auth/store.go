package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/quill-go/apperror"
	"github.com/user/quill-go/db"
)

// UserStore persists users. Implementations return *apperror.AppError values:
// ConflictError for a duplicate email, NotFoundError for a missing user.
// Profile reads go through users.ProfileStore instead.
type UserStore interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}

// PgUserStore is the PostgreSQL implementation of UserStore.
type PgUserStore struct {
	dbPool *pgxpool.Pool
}

var _ UserStore = (*PgUserStore)(nil)

// NewPgUserStore creates a PgUserStore on top of the shared pool.
func NewPgUserStore(dbPool *pgxpool.Pool) *PgUserStore {
	return &PgUserStore{dbPool: dbPool}
}

// CreateUser inserts user and fills in the database-assigned CreatedAt.
func (s *PgUserStore) CreateUser(ctx context.Context, user *User) (*User, error) {
	query := `INSERT INTO users (id, name, email, password)
              VALUES ($1, $2, $3, $4)
              RETURNING created_at`
	err := s.dbPool.QueryRow(ctx, query, user.ID, user.Name, user.Email, user.HashedPassword).Scan(&user.CreatedAt)
	if err != nil {
		// The unique index on email decides concurrent registrations for the same address.
		if _, ok := db.UniqueViolation(err); ok {
			return nil, apperror.NewConflictError("Email is already registered", err)
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user, including the password hash, by email.
func (s *PgUserStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT id, name, email, password, created_at FROM users WHERE email = $1`
	var user User
	err := s.dbPool.QueryRow(ctx, query, email).Scan(&user.ID, &user.Name, &user.Email, &user.HashedPassword, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("user with email '%s' not found", email), nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}
	return &user, nil
}
