package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/spec-kit/employee-service/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    "u-123",
		Name:  "A",
		Email: "a@x.com",
		Role:  domain.RoleEmployee,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, exp, err := tm.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if time.Until(exp) < 59*time.Minute {
		t.Errorf("expiry too soon: %v", exp)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != "u-123" {
		t.Errorf("subject = %q, want u-123", claims.Subject)
	}
	if claims.Role != domain.RoleEmployee {
		t.Errorf("role = %q, want employee", claims.Role)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("email = %q, want a@x.com", claims.Email)
	}
}

func TestTokenExpired(t *testing.T) {
	tm := &TokenManager{secret: []byte("test-secret"), ttl: -time.Minute}

	token, _, err := tm.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := tm.ParseToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("ParseToken = %v, want ErrTokenExpired", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	minter := NewTokenManager("secret-one", time.Hour)
	verifier := NewTokenManager("secret-two", time.Hour)

	token, _, err := minter.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := verifier.ParseToken(token); !errors.Is(err, ErrTokenSignatureInvalid) {
		t.Errorf("ParseToken = %v, want ErrTokenSignatureInvalid", err)
	}
}

func TestTokenMalformed(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	for _, garbage := range []string{"", "not-a-token", "a.b", "x.y.z"} {
		if _, err := tm.ParseToken(garbage); !errors.Is(err, ErrTokenMalformed) {
			t.Errorf("ParseToken(%q) = %v, want ErrTokenMalformed", garbage, err)
		}
	}
}

// A signature from a different secret must be rejected even when the
// expired claim would also fail; the signature check comes first.
func TestTokenWrongSecretBeatsExpiry(t *testing.T) {
	minter := &TokenManager{secret: []byte("secret-one"), ttl: -time.Minute}
	verifier := NewTokenManager("secret-two", time.Hour)

	token, _, err := minter.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := verifier.ParseToken(token); !errors.Is(err, ErrTokenSignatureInvalid) {
		t.Errorf("ParseToken = %v, want ErrTokenSignatureInvalid", err)
	}
}
