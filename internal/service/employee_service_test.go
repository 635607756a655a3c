package service

import (
	"context"
	"testing"
	"time"

	"github.com/spec-kit/employee-service/internal/auth"
	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/events"
)

func intPtr(v int) *int { return &v }

func adminActor() events.Actor {
	return events.Actor{UserID: "admin-1", Role: domain.RoleAdmin}
}

func TestEmployeeCreateDefaults(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewEmployeeService(testConfig(), repo, nil)

	user, err := svc.Create(context.Background(), adminActor(), EmployeeInput{
		Name:     "B",
		Email:    "b@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.Role != domain.RoleEmployee {
		t.Errorf("role = %q, want employee", user.Role)
	}
	if user.Department != domain.DefaultDepartment || user.Location != domain.DefaultLocation {
		t.Errorf("defaults not applied: %q / %q", user.Department, user.Location)
	}
	if err := auth.ComparePassword(user.PasswordHash, "secret1"); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestEmployeeCreateDuplicate(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewEmployeeService(testConfig(), repo, nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, adminActor(), EmployeeInput{Name: "B", Email: "b@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := svc.Create(ctx, adminActor(), EmployeeInput{Name: "C", Email: "b@x.com", Password: "secret2"})
	if err == nil {
		t.Fatal("duplicate Create succeeded")
	}
	if code := domainCode(t, err); code != "CONFLICT" {
		t.Errorf("code = %q, want CONFLICT", code)
	}
}

func TestEmployeeUpdateProfileFields(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewEmployeeService(testConfig(), repo, nil)
	ctx := context.Background()

	user, err := svc.Create(ctx, adminActor(), EmployeeInput{Name: "B", Email: "b@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	hashBefore := user.PasswordHash

	doj := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(ctx, adminActor(), user.ID, EmployeeInput{
		Salary:     intPtr(90000),
		Age:        intPtr(31),
		Department: "Engineering",
		DateOfJoin: &doj,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Salary != 90000 || updated.Age != 31 || updated.Department != "Engineering" {
		t.Errorf("profile fields not applied: %+v", updated)
	}
	if !updated.DateOfJoin.Equal(doj) {
		t.Errorf("doj = %v, want %v", updated.DateOfJoin, doj)
	}
	if updated.PasswordHash != hashBefore {
		t.Error("password hash changed through profile update")
	}
	if updated.Role != domain.RoleEmployee {
		t.Error("role changed through profile update")
	}
}

func TestEmployeeUpdateNotFound(t *testing.T) {
	svc := NewEmployeeService(testConfig(), newMemoryUserRepo(), nil)

	_, err := svc.Update(context.Background(), adminActor(), "missing", EmployeeInput{Name: "X"})
	if err == nil {
		t.Fatal("Update of missing employee succeeded")
	}
	if code := domainCode(t, err); code != "NOT_FOUND" {
		t.Errorf("code = %q, want NOT_FOUND", code)
	}
}

func TestEmployeeDelete(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewEmployeeService(testConfig(), repo, nil)
	ctx := context.Background()

	user, err := svc.Create(ctx, adminActor(), EmployeeInput{Name: "B", Email: "b@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, adminActor(), user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if repo.count() != 0 {
		t.Errorf("user count = %d, want 0", repo.count())
	}

	err = svc.Delete(ctx, adminActor(), user.ID)
	if err == nil {
		t.Fatal("second Delete succeeded")
	}
	if code := domainCode(t, err); code != "NOT_FOUND" {
		t.Errorf("code = %q, want NOT_FOUND", code)
	}
}

func TestEmployeeListByRole(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewEmployeeService(testConfig(), repo, nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, adminActor(), EmployeeInput{Name: "B", Email: "b@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, adminActor(), EmployeeInput{Name: "C", Email: "c@x.com", Password: "secret2"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	employees, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(employees) != 2 {
		t.Errorf("len = %d, want 2", len(employees))
	}

	admins, err := svc.ListAdmins(ctx)
	if err != nil {
		t.Fatalf("ListAdmins: %v", err)
	}
	if len(admins) != 0 {
		t.Errorf("admins = %d, want 0", len(admins))
	}
}

func TestEmployeeEventsPublished(t *testing.T) {
	repo := newMemoryUserRepo()
	dispatcher := events.NewInMemoryDispatcher()
	var seen []events.EventType
	for _, et := range []events.EventType{events.EventEmployeeCreated, events.EventEmployeeUpdated, events.EventEmployeeDeleted} {
		et := et
		dispatcher.Subscribe(et, func(_ context.Context, e events.Event) error {
			seen = append(seen, e.Type)
			return nil
		})
	}

	svc := NewEmployeeService(testConfig(), repo, dispatcher)
	ctx := context.Background()

	user, err := svc.Create(ctx, adminActor(), EmployeeInput{Name: "B", Email: "b@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Update(ctx, adminActor(), user.ID, EmployeeInput{Department: "Sales"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := svc.Delete(ctx, adminActor(), user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	want := []events.EventType{events.EventEmployeeCreated, events.EventEmployeeUpdated, events.EventEmployeeDeleted}
	if len(seen) != len(want) {
		t.Fatalf("events = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("event[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
}
