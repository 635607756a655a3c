package dto

import "github.com/spec-kit/employee-service/internal/domain"

// SignupRequest payload for new accounts.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the minted token and the redacted user view.
type LoginResponse struct {
	Token string                   `json:"token"`
	User  domain.AuthenticatedUser `json:"user"`
}
