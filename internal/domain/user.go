package domain

import "time"

// RoleUser is the role assigned to accounts that register without one.
const RoleUser = "user"

// User is the domain model for registered accounts.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
