package dto

import (
	"time"

	"github.com/spec-kit/employee-service/internal/domain"
)

// EmployeeCreateRequest payload for admin-created accounts.
type EmployeeCreateRequest struct {
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Password   string     `json:"password"`
	DateOfJoin *time.Time `json:"doj,omitempty"`
	Salary     *int       `json:"salary,omitempty"`
	Experience *int       `json:"experience,omitempty"`
	Age        *int       `json:"age,omitempty"`
	Department string     `json:"department,omitempty"`
	Location   string     `json:"location,omitempty"`
}

// EmployeeUpdateRequest payload for profile updates. Password and role are
// intentionally absent.
type EmployeeUpdateRequest struct {
	Name       string     `json:"name,omitempty"`
	Email      string     `json:"email,omitempty"`
	DateOfJoin *time.Time `json:"doj,omitempty"`
	Salary     *int       `json:"salary,omitempty"`
	Experience *int       `json:"experience,omitempty"`
	Age        *int       `json:"age,omitempty"`
	Department string     `json:"department,omitempty"`
	Location   string     `json:"location,omitempty"`
}

// EmployeeResponse is the serialized view of a record. The password hash
// never appears here.
type EmployeeResponse struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Role       domain.Role `json:"role"`
	DateOfJoin time.Time   `json:"doj"`
	Salary     int         `json:"salary"`
	Experience int         `json:"experience"`
	Age        int         `json:"age"`
	Department string      `json:"department"`
	Location   string      `json:"location"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// NewEmployeeResponse maps the domain model to its serialized view.
func NewEmployeeResponse(u *domain.User) EmployeeResponse {
	return EmployeeResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		DateOfJoin: u.DateOfJoin,
		Salary:     u.Salary,
		Experience: u.Experience,
		Age:        u.Age,
		Department: u.Department,
		Location:   u.Location,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// NewEmployeeListResponse maps a slice of records.
func NewEmployeeListResponse(users []*domain.User) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewEmployeeResponse(u))
	}
	return out
}
