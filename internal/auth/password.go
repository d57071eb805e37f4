// Package auth implements credential handling for the FuelTrackr API:
// bcrypt password hashing and signed bearer tokens carrying the email and
// role claims that make up a session identity.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pereras/fueltrackr/backend/internal/domain"
)

// HashPassword returns the bcrypt hash of a plaintext password at the
// default cost. The hash is what gets persisted; the plaintext is never
// stored or logged.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth.HashPassword: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a stored bcrypt hash against a login attempt.
// A mismatch is reported as domain.ErrUnauthorized so callers can map it to
// HTTP 401 without distinguishing "wrong password" from "unknown user".
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}
	return nil
}
