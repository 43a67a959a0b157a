// Package auth, as part of the authentication module.
// This file, `middleware.go`, defines the HTTP middleware that protects routes
// requiring a session. It conforms to the standard `func(next http.Handler) http.Handler`
// shape, so chi can mount it with `r.Use(...)`, much like a Guard in Nest.js.
package auth

import (
	"net/http"
	"strings"

	"github.com/user/quill-go/apperror"
)

// RequireSession verifies the session token and stores the user id in the request context.
// The token is read from the `token` cookie, falling back to an
// `Authorization: Bearer {token}` header for non-browser clients.
func RequireSession(tokens *TokenIssuer) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := sessionToken(r)
			if err != nil {
				apperror.WriteError(w, r, err)
				return
			}

			userID, err := tokens.Verify(tokenString)
			if err != nil {
				apperror.WriteError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContextWithUserID(r.Context(), userID)))
		})
	}
}

func sessionToken(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", apperror.NewAuthError("Not logged in", nil)
	}

	// The Authorization header should be in the format "Bearer {token}".
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", apperror.NewAuthError("Authorization header format must be Bearer {token}", nil)
	}
	return parts[1], nil
}
