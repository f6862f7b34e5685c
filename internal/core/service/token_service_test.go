package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskforge/task-api/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	roles := []string{domain.RoleUser, domain.RoleAdmin}
	token, err := svc.Issue("alice", roles)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("expected subject alice, got %q", claims.Subject)
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != domain.RoleUser || claims.Roles[1] != domain.RoleAdmin {
		t.Fatalf("unexpected roles claim: %v", claims.Roles)
	}
	if claims.ExpiresAt.Before(time.Now()) {
		t.Fatalf("expiry should be in the future, got %v", claims.ExpiresAt)
	}
	if claims.IssuedAt.After(time.Now()) {
		t.Fatalf("issued-at should not be in the future, got %v", claims.IssuedAt)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "alice",
		"roles": []string{domain.RoleUser},
		"iat":   now.Add(-2 * time.Hour).Unix(),
		"exp":   now.Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Validate(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("alice", []string{domain.RoleUser})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestTokenService_MissingExpiry(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "alice",
		"roles": []string{domain.RoleUser},
	})
	signed, err := noExp.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Validate(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for token without exp, got %v", err)
	}
}

func TestTokenService_NonListRolesClaim(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "alice",
		"roles": "ROLE_USER",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tkn.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	claims, err := svc.Validate(signed)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if len(claims.Roles) != 0 {
		t.Fatalf("expected empty role set for non-list claim, got %v", claims.Roles)
	}
}
