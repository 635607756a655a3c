package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-service/internal/auth"
	"github.com/spec-kit/employee-service/internal/config"
	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/events"
	"github.com/spec-kit/employee-service/internal/repository"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

// EmployeeInput carries fields an administrator may set on a record.
type EmployeeInput struct {
	Name       string
	Email      string
	Password   string
	DateOfJoin *time.Time
	Salary     *int
	Experience *int
	Age        *int
	Department string
	Location   string
}

// EmployeeService implements the admin-side employee management surface
// and the employee self-profile view.
type EmployeeService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewEmployeeService builds the service.
func NewEmployeeService(cfg config.Config, users repository.UserRepository, dispatcher events.Dispatcher) *EmployeeService {
	return &EmployeeService{users: users, dispatcher: dispatcher, bcryptCost: cfg.Auth.BcryptCost}
}

// List returns all accounts holding the employee role.
func (s *EmployeeService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.ListByRole(ctx, domain.RoleEmployee)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// ListAdmins returns all accounts holding the admin role.
func (s *EmployeeService) ListAdmins(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.ListByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// GetByID fetches a single record.
func (s *EmployeeService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// MyProfile returns the authenticated subject's own record.
func (s *EmployeeService) MyProfile(ctx context.Context, subjectID string) (*domain.User, error) {
	return s.GetByID(ctx, subjectID)
}

// Create inserts a new employee account on behalf of an administrator.
func (s *EmployeeService) Create(ctx context.Context, actor events.Actor, in EmployeeInput) (*domain.User, error) {
	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
		DateOfJoin:   time.Now(),
		Department:   domain.DefaultDepartment,
		Location:     domain.DefaultLocation,
	}
	applyProfile(user, in)

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewConflict("employee already exists", nil)
		}
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventEmployeeCreated,
		UserID:    user.ID,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload: events.EmployeeCreatedPayload{
			Email:      user.Email,
			Department: user.Department,
			Location:   user.Location,
		},
	})

	return user, nil
}

// Update modifies profile fields of an existing record. Password and role
// are never writable through this path.
func (s *EmployeeService) Update(ctx context.Context, actor events.Actor, id string, in EmployeeInput) (*domain.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := applyProfile(user, in)

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", nil)
		}
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewConflict("email already in use", nil)
		}
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventEmployeeUpdated,
		UserID:    user.ID,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   events.EmployeeUpdatedPayload{ChangedFields: changed},
	})

	return user, nil
}

// Delete removes a record.
func (s *EmployeeService) Delete(ctx context.Context, actor events.Actor, id string) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("employee", nil)
		}
		return apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventEmployeeDeleted,
		UserID:    id,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   events.EmployeeDeletedPayload{Email: user.Email},
	})

	return nil
}

func applyProfile(user *domain.User, in EmployeeInput) []string {
	var changed []string
	if in.Name != "" && in.Name != user.Name {
		user.Name = in.Name
		changed = append(changed, "name")
	}
	if in.Email != "" && in.Email != user.Email {
		user.Email = in.Email
		changed = append(changed, "email")
	}
	if in.DateOfJoin != nil {
		user.DateOfJoin = *in.DateOfJoin
		changed = append(changed, "date_of_join")
	}
	if in.Salary != nil {
		user.Salary = *in.Salary
		changed = append(changed, "salary")
	}
	if in.Experience != nil {
		user.Experience = *in.Experience
		changed = append(changed, "experience")
	}
	if in.Age != nil {
		user.Age = *in.Age
		changed = append(changed, "age")
	}
	if in.Department != "" && in.Department != user.Department {
		user.Department = in.Department
		changed = append(changed, "department")
	}
	if in.Location != "" && in.Location != user.Location {
		user.Location = in.Location
		changed = append(changed, "location")
	}
	return changed
}

func (s *EmployeeService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
