package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func TestIssueVerify_RoundTrip(t *testing.T) {
	m := NewManager(testSecret, 0)
	raw, err := m.Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	claims, err := m.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("email = %q", claims.Email)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Fatalf("lifetime = %v, want 1h", got)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	raw, err := NewManager(testSecret, time.Hour).Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := NewManager("other", time.Hour).Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	m := NewManager(testSecret, time.Hour)
	issued := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return issued }
	raw, err := m.Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	m.now = time.Now
	if _, err := m.Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token to fail, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	m := NewManager(testSecret, time.Hour)
	for _, raw := range []string{"", "abc", "a.b.c"} {
		if _, err := m.Verify(raw); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("Verify(%q): expected ErrInvalidToken, got %v", raw, err)
		}
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewManager(testSecret, time.Hour).Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected HS512 token to be rejected, got %v", err)
	}
}

func TestVerify_RequiresExpiry(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "a@x.com"}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	_, err = NewManager(testSecret, time.Hour).Verify(raw)
	if err == nil || !strings.Contains(err.Error(), "invalid token") {
		t.Fatalf("expected token without exp to fail, got %v", err)
	}
}
