package domain

import "fmt"

// Identity is the authenticated caller's session context: the email and role
// decoded from a verified bearer token. It is constructed by the auth
// middleware on each request and passed explicitly to every component that
// needs authorization context — never stored as an ambient global.
type Identity struct {
	Email string
	Role  Role
}

// Authorize decides whether the given identity may perform an action that
// requires the given role. It is the single access-control contract for the
// whole API; route guards and services call it rather than comparing roles
// inline.
//
//   - nil identity (no valid session)  → ErrUnauthorized
//   - role mismatch                    → ErrForbidden
//   - otherwise                        → nil
//
// Pass an empty required role to check only that a session exists.
func Authorize(identity *Identity, required Role) error {
	if identity == nil {
		return fmt.Errorf("%w: no valid session", ErrUnauthorized)
	}
	if required != "" && identity.Role != required {
		return fmt.Errorf("%w: %s role required", ErrForbidden, required)
	}
	return nil
}
