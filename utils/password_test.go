package utils

import "testing"

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("farmflow123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "farmflow123" {
		t.Fatal("hash should not equal the plaintext")
	}
	if !CheckPassword(hash, "farmflow123") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Fatal("wrong password accepted")
	}
}
