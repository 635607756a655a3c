package domain

import "time"

// Role enumerates the access tiers an account may hold.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// IsValid reports whether the role is one of the known tiers.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// User is the domain model for an account: the login credential plus the
// employee profile fields managed by administrators.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	DateOfJoin   time.Time
	Salary       int
	Experience   int
	Age          int
	Department   string
	Location     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
