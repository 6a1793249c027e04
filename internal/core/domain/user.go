package domain

import "time"

type UserRole string

const (
	RoleManager UserRole = "manager"
	RoleMember  UserRole = "member"
)

func (r UserRole) Valid() bool {
	return r == RoleManager || r == RoleMember
}

type User struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateUserInput struct {
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
}

// UpdateUserInput replaces the profile fields wholesale; password changes go
// through a separate flow and are not part of user updates.
type UpdateUserInput struct {
	Name  string
	Email string
	Role  UserRole
}
