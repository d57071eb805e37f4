package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pereras/fueltrackr/backend/internal/domain"
)

// Claims is the JWT payload for a FuelTrackr session token.
// The role claim is what the frontend (and the RequireRole guard) uses for
// role-gated routing; the subject is the user's email.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies HS256-signed bearer tokens.
// It is constructed once in main from configuration and shared by the login
// handler and the auth middleware.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer returns a TokenIssuer signing with the given secret and
// issuing tokens valid for ttl.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a new token for the given user email and role.
func (ti *TokenIssuer) Issue(email string, role domain.Role) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
		},
	})

	signed, err := token.SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("auth.TokenIssuer.Issue: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a bearer token and returns the identity it
// encodes. Any failure (bad signature, expiry, wrong algorithm, garbage
// input) is reported as domain.ErrUnauthorized: the caller's session is
// simply not valid, and the client must re-authenticate.
func (ti *TokenIssuer) Verify(tokenString string) (domain.Identity, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return ti.secret, nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}
	if !claims.Role.Valid() {
		return domain.Identity{}, fmt.Errorf("%w: unknown role in token", domain.ErrUnauthorized)
	}
	return domain.Identity{Email: claims.Subject, Role: claims.Role}, nil
}
