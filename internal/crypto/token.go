package crypto

import (
	"crypto/sha256"
	"encoding/base64"
)

const refreshTokenLen = 32

// NewRefreshToken returns an opaque base64url token and the hash to store for it.
func NewRefreshToken() (token string, hash []byte, err error) {
	raw, err := RandBytes(refreshTokenLen)
	if err != nil {
		return "", nil, err
	}
	token = base64.RawURLEncoding.EncodeToString(raw)
	return token, HashToken(token), nil
}

// HashToken is the lookup key of a refresh token. Plain tokens are never stored.
func HashToken(token string) []byte {
	h := sha256.Sum256([]byte(token))
	return h[:]
}
