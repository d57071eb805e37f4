// Package domain contains the core data types for the FuelTrackr API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"strings"
	"time"
)

// Role is the access tier carried in a user's session token.
type Role string

const (
	// RoleEmployee is the default tier: log own travel, view own records.
	RoleEmployee Role = "employee"
	// RoleAdmin can view all records, manage users, and export reports.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the two recognized roles.
func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleAdmin
}

// User represents an employee account.
// Email is the primary identifier; there is no separate numeric ID.
// PasswordHash is the bcrypt hash of the login password and is never
// serialized in API responses.
type User struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	FuelCardNo   string    `json:"fuel_card_no"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizeEmail lowercases and trims an email address so lookups and
// uniqueness checks are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
