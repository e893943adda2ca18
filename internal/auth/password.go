package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt accepts. Longer passwords are
// rejected rather than truncated.
const MaxPasswordBytes = 72

// ErrEmptyPassword is returned when hashing an empty password.
var ErrEmptyPassword = errors.New("password cannot be empty")

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	// Hash returns a salted digest of the password.
	Hash(password string) (string, error)
	// Verify reports whether password matches digest. Malformed digests
	// verify as false.
	Verify(password, digest string) bool
}

// BcryptHasher implements PasswordHasher with bcrypt at a fixed cost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a hasher, falling back to bcrypt.DefaultCost when
// cost is outside the range bcrypt accepts.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash hashes a plaintext password with the configured cost.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if len(password) > MaxPasswordBytes {
		return "", bcrypt.ErrPasswordTooLong
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify compares a password against its hashed value. Passwords longer than
// MaxPasswordBytes never match.
func (h *BcryptHasher) Verify(password, digest string) bool {
	if digest == "" || len(password) > MaxPasswordBytes {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
