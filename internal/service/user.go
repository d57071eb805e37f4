// Package service contains the business logic for the FuelTrackr API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pereras/fueltrackr/backend/internal/auth"
	"github.com/pereras/fueltrackr/backend/internal/domain"
	"github.com/pereras/fueltrackr/backend/internal/repo"
)

// minPasswordLength is the minimum accepted login password length.
const minPasswordLength = 8

// RegisterInput carries the fields a new employee submits at registration.
// There is deliberately no role field: registration always produces an
// employee account, no matter what the caller sends over the wire.
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	FuelCardNo string
}

// UserService implements business logic for account operations.
type UserService struct {
	users  repo.UserRepo
	tokens *auth.TokenIssuer

	// emailDomain is the organization domain registrations must use,
	// without the "@" (e.g. "haycarb.com").
	emailDomain string
}

// NewUserService constructs a UserService backed by the provided repo and
// token issuer, restricting registration to the given email domain.
func NewUserService(users repo.UserRepo, tokens *auth.TokenIssuer, emailDomain string) *UserService {
	return &UserService{users: users, tokens: tokens, emailDomain: emailDomain}
}

// Register validates and persists a new employee account.
// The role is always forced to employee; promotion is a separate admin
// operation. Returns domain.ErrConflict if the email is already taken.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	email := domain.NormalizeEmail(in.Email)

	if strings.TrimSpace(in.Name) == "" {
		return domain.User{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if email == "" {
		return domain.User{}, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if !strings.HasSuffix(email, "@"+s.emailDomain) {
		return domain.User{}, fmt.Errorf("%w: email must be a @%s address", domain.ErrValidation, s.emailDomain)
	}
	if len(in.Password) < minPasswordLength {
		return domain.User{}, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Register: %w", err)
	}

	user := domain.User{
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		FuelCardNo:   strings.TrimSpace(in.FuelCardNo),
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Register: %w", err)
	}
	return created, nil
}

// Login verifies credentials and returns a signed session token together
// with the account. Unknown email and wrong password are both reported as
// domain.ErrUnauthorized so callers cannot probe which emails exist.
func (s *UserService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	user, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return "", domain.User{}, fmt.Errorf("service.UserService.Login: %w: invalid credentials", domain.ErrUnauthorized)
	}
	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return "", domain.User{}, fmt.Errorf("service.UserService.Login: %w", err)
	}

	token, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("service.UserService.Login: %w", err)
	}
	return token, user, nil
}

// GetByEmail returns a single account, for the profile endpoint.
func (s *UserService) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	user, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.GetByEmail: %w", err)
	}
	return user, nil
}

// List returns all accounts. Always returns a non-nil slice so callers can
// safely range over it.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.UserService.List: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

// UpdateRole sets another user's role. The acting admin may not change
// their own role — demoting yourself locks you out, promoting yourself is
// meaningless, and both are rejected with domain.ErrForbidden.
func (s *UserService) UpdateRole(ctx context.Context, actor domain.Identity, email string, role domain.Role) (domain.User, error) {
	email = domain.NormalizeEmail(email)

	if !role.Valid() {
		return domain.User{}, fmt.Errorf("%w: role must be %q or %q", domain.ErrValidation, domain.RoleEmployee, domain.RoleAdmin)
	}
	if domain.NormalizeEmail(actor.Email) == email {
		return domain.User{}, fmt.Errorf("%w: cannot change your own role", domain.ErrForbidden)
	}

	updated, err := s.users.UpdateRole(ctx, email, role)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.UpdateRole: %w", err)
	}
	return updated, nil
}

// Delete removes another user's account (and, via FK cascade, their travel
// logs). Self-deletion is rejected with domain.ErrForbidden.
func (s *UserService) Delete(ctx context.Context, actor domain.Identity, email string) error {
	email = domain.NormalizeEmail(email)

	if domain.NormalizeEmail(actor.Email) == email {
		return fmt.Errorf("%w: cannot delete your own account", domain.ErrForbidden)
	}

	if err := s.users.Delete(ctx, email); err != nil {
		return fmt.Errorf("service.UserService.Delete: %w", err)
	}
	return nil
}
