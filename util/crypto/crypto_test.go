package crypto

import (
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPasswordAsBcrypt("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "pw1" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPasswordHash(hash, "pw1") {
		t.Fatal("correct password rejected")
	}
	if CheckPasswordHash(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := HashPasswordAsBcrypt("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := HashPasswordAsBcrypt("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password are identical")
	}
}
