// Package hashpw hashes account passwords for the generated configuration.
// The rest of the installer treats the result as an opaque blob; only this
// package knows the algorithm.
package hashpw

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinLength is the shortest password the wizard accepts.
const MinLength = 1

// Hash derives a one-way hash suitable for users.users.<name>.hashedPassword.
// bcrypt output is understood by the PAM stack on the installed system.
func Hash(password string) (string, error) {
	if len(password) < MinLength {
		return "", fmt.Errorf("password must not be empty")
	}
	// bcrypt operates on bytes and rejects input over 72 bytes.
	if len(password) > 72 {
		return "", fmt.Errorf("password too long (max 72 bytes)")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches a previously produced hash.
// The wizard compares the plaintext confirmation fields directly; this is
// the check for anything that only holds the hash.
func Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
