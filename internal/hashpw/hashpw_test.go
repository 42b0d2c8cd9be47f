package hashpw

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("Expected bcrypt hash, got %q", hash)
	}

	if !Verify(hash, "correct horse battery staple") {
		t.Error("Expected password to verify")
	}
	if Verify(hash, "wrong password") {
		t.Error("Expected wrong password to fail verification")
	}
}

func TestHashRejectsEmpty(t *testing.T) {
	if _, err := Hash(""); err == nil {
		t.Error("Expected error for empty password")
	}
}

func TestHashRejectsOverlong(t *testing.T) {
	if _, err := Hash(strings.Repeat("x", 73)); err == nil {
		t.Error("Expected error for 73-byte password")
	}
}
