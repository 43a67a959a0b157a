// Package auth, as part of the authentication module.
// This file, `context.go`, deals with utilities for carrying the authenticated
// user id through a request's `context.Context`.
package auth

import (
	"context"

	"github.com/google/uuid"
)

// `contextKey` is a custom type for context keys. Using a custom type prevents collisions
// with context keys defined in other packages. It's a common Go idiom.
type contextKey string

const (
	userIDContextKey contextKey = "auth_user_id"
)

// NewContextWithUserID returns a child of ctx that carries userID.
func NewContextWithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// UserIDFromContext extracts the user id stored by RequireSession.
// The second return value reports whether an id was present.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDContextKey).(uuid.UUID)
	return userID, ok
}
