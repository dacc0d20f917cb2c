// Package password provides the one-way hashing pair used for locally
// authenticated accounts. bcrypt with a fixed work factor of 10; the cost is
// deliberately not configurable per call.
package password

import "golang.org/x/crypto/bcrypt"

const cost = 10

// Hash returns a salted bcrypt hash of plaintext, safe to persist and compare
// later with Verify.
func Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plaintext hashes to hash under the same scheme.
// A malformed hash yields false, never an error.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
