package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSessionResponderRespond(t *testing.T) {
	tests := []struct {
		name       string
		secure     bool
		wantSecure bool
	}{
		{"production", true, true},
		{"local development", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer := NewTokenIssuer(testAuthConfig())
			responder := NewSessionResponder(issuer, tt.secure)
			user := &User{
				ID:             uuid.New(),
				Name:           "Ann",
				Email:          "ann@x.com",
				HashedPassword: "$2a$10$secret-hash",
				CreatedAt:      time.Now().UTC(),
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)
			issuedAt := time.Now()
			responder.Respond(rec, req, user)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}

			cookies := rec.Result().Cookies()
			if len(cookies) != 1 {
				t.Fatalf("got %d cookies, want 1", len(cookies))
			}
			cookie := cookies[0]
			if cookie.Name != SessionCookieName {
				t.Errorf("cookie name = %q, want %q", cookie.Name, SessionCookieName)
			}
			if !cookie.HttpOnly {
				t.Error("cookie is not HttpOnly")
			}
			if cookie.Secure != tt.wantSecure {
				t.Errorf("cookie Secure = %v, want %v", cookie.Secure, tt.wantSecure)
			}
			if cookie.Path != "/" {
				t.Errorf("cookie Path = %q, want /", cookie.Path)
			}
			// Cookie expiry has one-second resolution on the wire.
			if d := cookie.Expires.Sub(issuedAt); d < 72*time.Hour-5*time.Second || d > 72*time.Hour+5*time.Second {
				t.Errorf("cookie expires %v after issuance, want about 72h", d)
			}

			var body map[string]interface{}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["success"] != true {
				t.Errorf("success = %v, want true", body["success"])
			}
			if body["token"] != cookie.Value {
				t.Error("body token and cookie value differ")
			}
			userBody, ok := body["user"].(map[string]interface{})
			if !ok {
				t.Fatalf("user = %#v, want object", body["user"])
			}
			if _, present := userBody["password"]; present {
				t.Error("response user contains a password field")
			}
			if strings.Contains(rec.Body.String(), user.HashedPassword) {
				t.Error("response leaks the password hash")
			}
			if user.HashedPassword != "$2a$10$secret-hash" {
				t.Error("Respond mutated the user entity")
			}

			if got, err := issuer.Verify(cookie.Value); err != nil || got != user.ID {
				t.Errorf("Verify(cookie) = %s, %v; want %s", got, err, user.ID)
			}
		})
	}
}

func TestSessionResponderClear(t *testing.T) {
	responder := NewSessionResponder(NewTokenIssuer(testAuthConfig()), true)
	rec := httptest.NewRecorder()

	responder.Clear(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	if cookies[0].Name != SessionCookieName || cookies[0].Value != "" {
		t.Errorf("cookie = %s=%q, want an empty %s", cookies[0].Name, cookies[0].Value, SessionCookieName)
	}
	if cookies[0].MaxAge >= 0 {
		t.Errorf("MaxAge = %d, want negative", cookies[0].MaxAge)
	}
}
