package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "secret123" {
		t.Fatal("Hash() returned the plaintext")
	}

	if !h.Verify("secret123", hash) {
		t.Error("Verify() with the original password = false, want true")
	}
	for _, other := range []string{"", "secret124", "SECRET123", "secret123 "} {
		if h.Verify(other, hash) {
			t.Errorf("Verify(%q) = true, want false", other)
		}
	}
}

func TestBcryptHasherSalts(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password are identical; salt missing")
	}
	if !h.Verify("secret123", first) || !h.Verify("secret123", second) {
		t.Error("both hashes should verify against the original password")
	}
}

func TestBcryptHasherCost(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{"configured cost", 10, 10},
		{"too low falls back to default", 1, bcrypt.DefaultCost},
		{"too high falls back to default", 99, bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := NewBcryptHasher(tt.cost).Hash("pw")
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}
			got, err := bcrypt.Cost([]byte(hash))
			if err != nil {
				t.Fatalf("bcrypt.Cost() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("cost = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBcryptHasherRejectsLongPasswords(t *testing.T) {
	_, err := NewBcryptHasher(bcrypt.MinCost).Hash(strings.Repeat("a", 73))
	if err == nil {
		t.Fatal("Hash() of a 73-byte password should fail")
	}
}
