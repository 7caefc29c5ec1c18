package cryptox

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !CheckPassword(hash, "secret-password") {
		t.Errorf("expected hash to verify against the original password")
	}

	if CheckPassword(hash, "wrong-password") {
		t.Errorf("expected verification to fail for a different password")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	hash1, err := HashPassword("secret-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hash2, err := HashPassword("secret-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// random salt per call, so repeated hashing never yields the same string
	if hash1 == hash2 {
		t.Errorf("expected distinct hashes for repeated calls, got identical")
	}
}

func TestHashPassword_InvalidCost(t *testing.T) {
	if _, err := HashPassword("secret-password", bcrypt.MaxCost+1); err == nil {
		t.Errorf("expected error for cost above bcrypt.MaxCost")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "secret-password") {
		t.Errorf("expected verification to fail for a malformed hash")
	}
}

func TestHashPassword_EncodesCost(t *testing.T) {
	hash, err := HashPassword("secret-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(hash, "$2a$04$") {
		t.Errorf("expected hash to encode cost %d, got %q", bcrypt.MinCost, hash)
	}
}
