// Package auth, as part of the authentication module.
// This file, `models.go`, defines the `User` entity and its public projection.
package auth

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user as stored in the database.
// The `json:"-"` tag on HashedPassword keeps it out of any accidental encoding,
// but handlers never encode a User directly; they send PublicUser instead.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
}

// PublicUser is the client-safe view of a User. It has no password field at all.
type PublicUser struct {
	ID        uuid.UUID `json:"id" example:"5b0f5a0e-8a3c-4f6b-9a53-3f3b5c1d2e4f"`
	Name      string    `json:"name" example:"Ann"`
	Email     string    `json:"email" example:"ann@x.com"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
}

// Public builds the response projection of u without touching u itself.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
