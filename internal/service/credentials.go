package service

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores input past this length, so longer passwords are rejected.
const maxPasswordBytes = 72

// Credentials hashes and verifies passwords with bcrypt.
type Credentials struct {
	cost int
}

// NewCredentials uses bcrypt.DefaultCost when cost is out of bcrypt's range.
func NewCredentials(cost int) *Credentials {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Credentials{cost: cost}
}

// HashPassword returns a salted bcrypt digest of password.
func (c *Credentials) HashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", validationError("password is required")
	}
	if len(password) > maxPasswordBytes {
		return "", validationError(fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", validationError(fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches hash. The comparison is
// constant time.
func (c *Credentials) VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
