package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pereras/fueltrackr/backend/internal/domain"
)

// TokenVerifier decodes a bearer token into a session identity.
// *auth.TokenIssuer satisfies it; tests can substitute a stub.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// identityKey is the context key under which the verified Identity is stored.
// An unexported type prevents collisions with other packages' context keys.
type identityKey struct{}

// NewAuthenticator returns a middleware that requires a valid
// "Authorization: Bearer <token>" header on every request it wraps.
// On success the decoded Identity is stored in the request context for
// handlers to read via IdentityFrom; on failure the request is rejected with
// 401 before any handler runs.
//
// This server-side check is the security boundary: clients may hide
// admin-only screens as a UX convenience, but authorization is decided here.
func NewAuthenticator(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeAuthError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				writeAuthError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole returns a middleware that denies the request with 403 unless
// the authenticated identity holds the given role. Wire it after
// NewAuthenticator; a missing identity is a 401, not a 403.
func RequireRole(role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFrom(r.Context())
			var idPtr *domain.Identity
			if ok {
				idPtr = &identity
			}

			if err := domain.Authorize(idPtr, role); err != nil {
				if idPtr == nil {
					writeAuthError(w, http.StatusUnauthorized, "unauthorized", "no valid session")
					return
				}
				writeAuthError(w, http.StatusForbidden, "forbidden", string(role)+" role required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFrom extracts the authenticated identity stored by NewAuthenticator.
// The second return is false when the request never passed authentication.
func IdentityFrom(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(domain.Identity)
	return identity, ok
}

// writeAuthError writes the API's uniform error body. It is duplicated here
// rather than imported from the handler package to keep the middleware free
// of handler dependencies.
func writeAuthError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
