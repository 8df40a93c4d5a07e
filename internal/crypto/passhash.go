// Package crypto implements server-side secret hashing and verification.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters (tuned for server-side hashing).
const (
	argonTime    uint32 = 3         // iterations
	argonMemory  uint32 = 64 * 1024 // 64 MB
	argonThreads uint8  = 1
	argonKeyLen  uint32 = 32

	// SaltLen is the per-user salt size in bytes.
	SaltLen = 16
)

// NewSalt returns a fresh per-user random salt.
func NewSalt() ([]byte, error) {
	b := make([]byte, SaltLen)
	_, err := rand.Read(b)
	return b, err
}

// HashSecret returns the Argon2id hash of secret under the given salt.
func HashSecret(secret string, salt []byte) []byte {
	return argon2.IDKey([]byte(secret), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// VerifySecret recomputes the hash with the stored salt and compares in
// constant time.
func VerifySecret(secret string, salt, expected []byte) bool {
	got := HashSecret(secret, salt)
	return subtle.ConstantTimeCompare(got, expected) == 1
}
