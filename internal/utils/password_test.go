package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify_Success(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "pw1" || hash == "" {
		t.Fatalf("hash must not be empty or equal to the plaintext")
	}
	if !VerifyPassword(hash, "pw1") {
		t.Fatalf("expected password to verify")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if VerifyPassword(hash, "pw2") {
		t.Fatalf("wrong password must not verify")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()

	if VerifyPassword("not-a-bcrypt-hash", "pw1") {
		t.Fatalf("malformed hash must verify as false")
	}
	if VerifyPassword("", "pw1") {
		t.Fatalf("empty hash must verify as false")
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("same", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	b, err := HashPassword("same", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same input must differ (per-call salt)")
	}
}
