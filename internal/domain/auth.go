package domain

import "time"

// DefaultDepartment is assigned to profiles until an admin sets one.
const DefaultDepartment = "Not Assigned"

// DefaultLocation is assigned to profiles until an admin sets one.
const DefaultLocation = "Not Assigned"

// AuthenticatedUser is the redacted view of a User returned to clients
// after a successful login. It never carries the password hash.
type AuthenticatedUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Redacted builds the client-safe view of a user.
func (u *User) Redacted() AuthenticatedUser {
	return AuthenticatedUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// Token records metadata for an issued token. Tokens are self-contained;
// the server keeps no registry and cannot revoke one before ExpiresAt.
type Token struct {
	SubjectID string
	Role      Role
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
