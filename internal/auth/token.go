package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// SessionTokenBytes is the amount of randomness in a session token (256 bits).
const SessionTokenBytes = 32

// SessionTokenLength is the encoded length of a session token.
var SessionTokenLength = base64.RawURLEncoding.EncodedLen(SessionTokenBytes)

// TokenGenerator produces opaque session tokens.
type TokenGenerator interface {
	Generate() (string, error)
}

// RandomTokenGenerator draws tokens from crypto/rand and encodes them as
// unpadded URL-safe base64.
type RandomTokenGenerator struct{}

// NewTokenGenerator returns the default generator.
func NewTokenGenerator() RandomTokenGenerator {
	return RandomTokenGenerator{}
}

// Generate returns a fresh token.
func (RandomTokenGenerator) Generate() (string, error) {
	buf := make([]byte, SessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
