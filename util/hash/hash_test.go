package hash

import "testing"

func TestHashAndCheck(t *testing.T) {
	h, err := HashPassword("supersecret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h == "supersecret" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !Check(h, "supersecret") {
		t.Fatal("Check rejected the correct password")
	}
	if Check(h, "wrong") {
		t.Fatal("Check accepted a wrong password")
	}
}
