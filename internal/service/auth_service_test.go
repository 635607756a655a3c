package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/employee-service/internal/config"
	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/repository"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

// memoryUserRepo is an in-memory UserRepository enforcing the same email
// uniqueness the Postgres index does.
type memoryUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User // keyed by id
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*domain.User)}
}

func (r *memoryUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memoryUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	for id, existing := range r.users {
		if id != user.ID && existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memoryUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.users, id)
	return nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryUserRepo) ListByRole(_ context.Context, role domain.Role) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.User
	for _, user := range r.users {
		if user.Role == role {
			clone := *user
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memoryUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:           "test-secret",
			AccessTokenTTLHours: 1,
			BcryptCost:          bcrypt.MinCost,
		},
	}
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var de *apperrors.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("error %v is not a DomainError", err)
	}
	return de.Code
}

func TestSignupThenLogin(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: repo})
	ctx := context.Background()

	user, err := svc.Signup(ctx, "A", "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if user.Role != domain.RoleEmployee {
		t.Errorf("role = %q, want employee", user.Role)
	}
	if user.PasswordHash == "secret1" || user.PasswordHash == "" {
		t.Error("plaintext stored or hash missing")
	}
	if user.Department != domain.DefaultDepartment {
		t.Errorf("department = %q, want default", user.Department)
	}

	got, token, exp, err := svc.Login(ctx, "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("Login after signup: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("login user id = %q, want %q", got.ID, user.ID)
	}
	if exp.IsZero() {
		t.Error("zero expiry")
	}

	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != user.ID || claims.Role != domain.RoleEmployee || claims.Email != "a@x.com" {
		t.Errorf("claims = %+v, want subject/role/email of the credential", claims)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: repo})
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "A", "a@x.com", "secret1"); err != nil {
		t.Fatalf("first Signup: %v", err)
	}

	_, err := svc.Signup(ctx, "B", "a@x.com", "secret2")
	if err == nil {
		t.Fatal("duplicate Signup succeeded")
	}
	if code := domainCode(t, err); code != "CONFLICT" {
		t.Errorf("code = %q, want CONFLICT", code)
	}
	if repo.count() != 1 {
		t.Errorf("user count = %d, want 1", repo.count())
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: newMemoryUserRepo()})

	_, _, _, err := svc.Login(context.Background(), "nobody@x.com", "secret1")
	if err == nil {
		t.Fatal("Login with unknown email succeeded")
	}
	if code := domainCode(t, err); code != "NOT_FOUND" {
		t.Errorf("code = %q, want NOT_FOUND", code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: repo})
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "A", "a@x.com", "secret1"); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	before, _ := repo.GetByEmail(ctx, "a@x.com")

	_, _, _, err := svc.Login(ctx, "a@x.com", "wrong")
	if err == nil {
		t.Fatal("Login with wrong password succeeded")
	}
	if code := domainCode(t, err); code != "INVALID_CREDENTIALS" {
		t.Errorf("code = %q, want INVALID_CREDENTIALS", code)
	}

	after, _ := repo.GetByEmail(ctx, "a@x.com")
	if before.PasswordHash != after.PasswordHash || before.UpdatedAt != after.UpdatedAt {
		t.Error("credential mutated by failed login")
	}
}

// blockedThrottle simulates an email over the failure limit.
type blockedThrottle struct {
	repository.NoopLoginThrottle
	blocked string
}

func (b blockedThrottle) TooManyFailures(_ context.Context, email string) bool {
	return email == b.blocked
}

func TestLoginThrottled(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewAuthService(testConfig(), AuthDependencies{
		UserRepo: repo,
		Throttle: blockedThrottle{blocked: "a@x.com"},
	})
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "A", "a@x.com", "secret1"); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	_, _, _, err := svc.Login(ctx, "a@x.com", "secret1")
	if err == nil {
		t.Fatal("throttled Login succeeded")
	}
	if code := domainCode(t, err); code != "TOO_MANY_ATTEMPTS" {
		t.Errorf("code = %q, want TOO_MANY_ATTEMPTS", code)
	}
}
