package utils

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hashing failed: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext password")
	}

	ok, err := VerifyPassword(hash, "correct horse battery staple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected password to verify")
	}
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("right")
	if err != nil {
		t.Fatalf("hashing failed: %v", err)
	}

	ok, err := VerifyPassword(hash, "wrong")
	if err != nil {
		t.Fatalf("a mismatch must not be reported as an error, got: %v", err)
	}
	if ok {
		t.Error("expected mismatch")
	}
}

func TestVerifyPassword_UnreadableHash(t *testing.T) {
	ok, err := VerifyPassword("not-a-bcrypt-hash", "whatever")
	if err == nil {
		t.Fatal("expected error for unreadable hash, got nil")
	}
	if ok {
		t.Error("expected ok=false for unreadable hash")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("same password")
	if err != nil {
		t.Fatalf("hashing failed: %v", err)
	}
	h2, err := HashPassword("same password")
	if err != nil {
		t.Fatalf("hashing failed: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password must differ")
	}
}
