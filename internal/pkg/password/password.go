// Package password wraps bcrypt as the one-way salted hash primitive for
// user credentials.
package password

import "golang.org/x/crypto/bcrypt"

// Hash produces a salted bcrypt digest of plaintext. Two calls on the
// same input yield different digests (bcrypt salts internally).
func Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plaintext matches hashed. Malformed hashes
// verify as false; this function never panics past the boundary.
func Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
