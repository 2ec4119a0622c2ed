package server

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// pbkdf2 cost aligned with passlib's pbkdf2_sha256 default.
const (
	hashIterations = 29000
	hashSaltSize   = 16
	hashKeySize    = 32
)

// credential holds a derived password key and the salt it was derived with.
type credential struct {
	salt []byte
	key  []byte
}

// hashPassword derives a credential from a clear-text password with a fresh
// random salt.
func hashPassword(password string) (credential, error) {
	salt := make([]byte, hashSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return credential{}, fmt.Errorf("generating password salt: %w", err)
	}
	key := pbkdf2.Key([]byte(password), salt, hashIterations, hashKeySize, sha256.New)
	return credential{salt: salt, key: key}, nil
}

// verify reports whether the password derives the stored key. The comparison
// is constant-time.
func (c credential) verify(password string) bool {
	key := pbkdf2.Key([]byte(password), c.salt, hashIterations, hashKeySize, sha256.New)
	return subtle.ConstantTimeCompare(key, c.key) == 1
}
