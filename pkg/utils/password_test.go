package utils

import "testing"

func TestPasswordRoundtrip(t *testing.T) {
	h := HashPassword("s3cret")
	if h == "s3cret" || h == "" {
		t.Fatal("hash must not be empty or the plaintext")
	}
	if !CheckPassword("s3cret", h) {
		t.Fatal("correct password must verify")
	}
	if CheckPassword("wrong", h) {
		t.Fatal("wrong password must not verify")
	}
}

func TestNewIDIsValid(t *testing.T) {
	id := NewID()
	if !IsID(id) {
		t.Fatalf("NewID produced an invalid id %q", id)
	}
	if IsID("nope") || IsID("") {
		t.Fatal("IsID must reject non-uuid strings")
	}
	if NewID() == NewID() {
		t.Fatal("ids must not repeat")
	}
}
