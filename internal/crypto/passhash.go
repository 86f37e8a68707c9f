// Package crypto implements server-side password hashing and opaque refresh tokens.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters (tuned for server-side hashing).
const (
	argonTime    uint32 = 3         // iterations
	argonMemory  uint32 = 64 * 1024 // 64 MB
	argonThreads uint8  = 1
	argonKeyLen  uint32 = 32
	saltLen             = 16
)

const hashScheme = "argon2id"

var b64 = base64.RawStdEncoding

// ErrMalformedHash is returned for stored hashes not produced by HashPassword.
var ErrMalformedHash = errors.New("malformed password hash")

// RandBytes returns n cryptographically secure random bytes.
func RandBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

func derive(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// HashPassword returns the encoded form "argon2id$<salt>$<hash>" with a fresh salt.
func HashPassword(password string) (string, error) {
	salt, err := RandBytes(saltLen)
	if err != nil {
		return "", err
	}
	return encode(salt, derive([]byte(password), salt)), nil
}

func encode(salt, hash []byte) string {
	return hashScheme + "$" + b64.EncodeToString(salt) + "$" + b64.EncodeToString(hash)
}

func decode(encoded string) (salt, hash []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != hashScheme {
		return nil, nil, ErrMalformedHash
	}
	if salt, err = b64.DecodeString(parts[1]); err != nil {
		return nil, nil, ErrMalformedHash
	}
	if hash, err = b64.DecodeString(parts[2]); err != nil || len(hash) == 0 {
		return nil, nil, ErrMalformedHash
	}
	return salt, hash, nil
}

// VerifyPassword checks password against an encoded hash in constant time.
func VerifyPassword(password, encoded string) bool {
	salt, want, err := decode(encoded)
	if err != nil {
		return false
	}
	got := derive([]byte(password), salt)
	return subtle.ConstantTimeCompare(got, want) == 1
}
