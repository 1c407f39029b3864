package auth

import "testing"

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword(hash, "correct horse battery staple") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong password") {
		t.Error("wrong password accepted")
	}
}

func TestPasswordHashInvalidCostFallsBack(t *testing.T) {
	hash, err := HashPassword("hunter22", 99)
	if err != nil {
		t.Fatalf("HashPassword with out-of-range cost: %v", err)
	}
	if !CheckPassword(hash, "hunter22") {
		t.Error("hash produced with fallback cost does not verify")
	}
}
