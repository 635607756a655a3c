package events

import (
	"time"

	"github.com/spec-kit/employee-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserSignedUp    EventType = "user_signed_up"
	EventEmployeeCreated EventType = "employee_created"
	EventEmployeeUpdated EventType = "employee_updated"
	EventEmployeeDeleted EventType = "employee_deleted"
)

// Actor identifies who triggered an event. Empty for self-service signup.
type Actor struct {
	UserID string      `json:"user_id,omitempty"`
	Role   domain.Role `json:"role,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserSignedUpPayload payload.
type UserSignedUpPayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// EmployeeCreatedPayload payload.
type EmployeeCreatedPayload struct {
	Email      string `json:"email"`
	Department string `json:"department"`
	Location   string `json:"location"`
}

// EmployeeUpdatedPayload payload.
type EmployeeUpdatedPayload struct {
	ChangedFields []string `json:"changed_fields"`
}

// EmployeeDeletedPayload payload.
type EmployeeDeletedPayload struct {
	Email string `json:"email"`
}
