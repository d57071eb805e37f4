// Package repo contains all database access logic for the FuelTrackr API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pereras/fueltrackr/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserRepo defines the persistence operations for user accounts.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type UserRepo interface {
	// Create inserts a new user and returns the persisted record.
	// Returns domain.ErrConflict if the email is already registered.
	Create(ctx context.Context, user domain.User) (domain.User, error)

	// GetByEmail retrieves a single user by email.
	// Returns domain.ErrNotFound if no such user exists.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// List returns all users ordered by email ascending.
	List(ctx context.Context) ([]domain.User, error)

	// UpdateRole sets a user's role and returns the updated record.
	// Returns domain.ErrNotFound if no such user exists.
	UpdateRole(ctx context.Context, email string, role domain.Role) (domain.User, error)

	// Delete removes a user by email; the user's travel logs are removed by
	// the FK cascade. Returns domain.ErrNotFound if no such user exists.
	Delete(ctx context.Context, email string) error
}

// pgUserRepo is the Postgres implementation of UserRepo.
type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

// Create inserts a new user row and returns the full persisted record.
func (r *pgUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	const q = `
		INSERT INTO users (email, name, fuel_card_no, password_hash, role)
		VALUES (@email, @name, @fuel_card_no, @password_hash, @role)
		RETURNING email, name, fuel_card_no, password_hash, role, created_at, updated_at`

	args := pgx.NamedArgs{
		"email":         user.Email,
		"name":          user.Name,
		"fuel_card_no":  user.FuelCardNo,
		"password_hash": user.PasswordHash,
		"role":          string(user.Role),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w: email already registered", domain.ErrConflict)
		}
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", err)
	}
	return result, nil
}

// GetByEmail retrieves a user by primary key.
func (r *pgUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	const q = `
		SELECT email, name, fuel_card_no, password_hash, role, created_at, updated_at
		FROM users
		WHERE email = @email`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"email": email})
	result, err := scanUser(row)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByEmail: %w", err)
	}
	return result, nil
}

// List returns all users ordered by email ascending.
func (r *pgUserRepo) List(ctx context.Context) ([]domain.User, error) {
	const q = `
		SELECT email, name, fuel_card_no, password_hash, role, created_at, updated_at
		FROM users
		ORDER BY email ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.UserRepo.List: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.UserRepo.List: scan: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.UserRepo.List: rows: %w", err)
	}

	return users, nil
}

// UpdateRole sets the role of an existing user and returns the updated record.
func (r *pgUserRepo) UpdateRole(ctx context.Context, email string, role domain.Role) (domain.User, error) {
	const q = `
		UPDATE users
		SET role       = @role,
		    updated_at = now()
		WHERE email = @email
		RETURNING email, name, fuel_card_no, password_hash, role, created_at, updated_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"email": email, "role": string(role)})
	result, err := scanUser(row)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.UpdateRole: %w", err)
	}
	return result, nil
}

// Delete removes a user by primary key.
func (r *pgUserRepo) Delete(ctx context.Context, email string) error {
	const q = `DELETE FROM users WHERE email = @email`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"email": email})
	if err != nil {
		return fmt.Errorf("repo.UserRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.UserRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanUser maps a single database row into a domain.User.
func scanUser(s scanner) (domain.User, error) {
	var (
		u    domain.User
		role string
	)

	err := s.Scan(&u.Email, &u.Name, &u.FuelCardNo, &u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}

	u.Role = domain.Role(role)
	return u, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
