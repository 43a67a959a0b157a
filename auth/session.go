package auth

import (
	"net/http"
	"time"

	"github.com/user/quill-go/apperror"
)

// SessionCookieName is the cookie that carries the session token.
const SessionCookieName = "token"

// SessionResponder finalizes every response that starts a session:
// it issues a token, sets the session cookie and writes the JSON body.
type SessionResponder struct {
	tokens *TokenIssuer
	secure bool
}

// NewSessionResponder creates a SessionResponder. secure controls the cookie's Secure flag.
func NewSessionResponder(tokens *TokenIssuer, secure bool) *SessionResponder {
	return &SessionResponder{tokens: tokens, secure: secure}
}

// Respond writes `200 {success, user, token}` plus a `token` cookie that expires
// together with the token. The user is projected with Public, never mutated.
func (s *SessionResponder) Respond(w http.ResponseWriter, r *http.Request, user *User) {
	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		apperror.WriteError(w, r, apperror.NewInternalError("failed to issue session", err))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(s.tokens.Duration().Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	apperror.WriteJSON(w, http.StatusOK, SessionResponse{
		Success: true,
		User:    user.Public(),
		Token:   token,
	})
}

// Clear expires the session cookie in the browser.
func (s *SessionResponder) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
