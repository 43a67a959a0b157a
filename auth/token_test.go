package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/user/quill-go/apperror"
)

func TestTokenIssuerRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testAuthConfig())
	userID := uuid.New()

	before := time.Now()
	token, expiresAt, err := issuer.Issue(userID)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned an empty token")
	}
	if d := expiresAt.Sub(before); d < 72*time.Hour-time.Second || d > 72*time.Hour+5*time.Second {
		t.Errorf("expiry is %v after issuance, want about 72h", d)
	}

	got, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if got != userID {
		t.Errorf("Verify() = %s, want %s", got, userID)
	}
}

func TestTokenIssuerRejects(t *testing.T) {
	cfg := testAuthConfig()
	issuer := NewTokenIssuer(cfg)
	userID := uuid.New()

	valid, _, err := issuer.Issue(userID)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	otherCfg := cfg
	otherCfg.JWTSecret = "another-secret-key-at-least-32-chars"
	foreign, _, err := NewTokenIssuer(otherCfg).Issue(userID)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	expiredIssuer := NewTokenIssuer(cfg)
	expiredIssuer.now = func() time.Time { return time.Now().Add(-73 * time.Hour) }
	expired, _, err := expiredIssuer.Issue(userID)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &CustomClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuerName,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString(none) error = %v", err)
	}

	missingUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuerName,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &CustomClaims{
		UserID:           userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{Issuer: tokenIssuerName},
	}).SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	tests := []struct {
		name        string
		token       string
		wantMessage string
	}{
		{"garbage", "not-a-token", "Invalid session token"},
		{"tampered", valid + "x", "Invalid session token"},
		{"wrong secret", foreign, "Invalid session token"},
		{"expired", expired, "Session expired"},
		{"alg none", noneToken, "Invalid session token"},
		{"missing user id", missingUser, "Invalid session token"},
		{"missing expiry", noExpiry, "Invalid session token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.Verify(tt.token)
			if err == nil {
				t.Fatal("Verify() error = nil, want error")
			}
			if !apperror.IsAuthError(err) {
				t.Errorf("Verify() error = %v, want AuthError", err)
			}
			appErr, _ := apperror.FromError(err)
			if appErr.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", appErr.Message, tt.wantMessage)
			}
		})
	}
}
