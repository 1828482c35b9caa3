package service

import (
	"errors"
	"testing"
	"time"

	"github.com/conexa/starwars-api/internal/core/domain"
	"github.com/conexa/starwars-api/internal/core/ports"
)

func TestTokenService_IssueVerify(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(ports.Claims{Subject: "user-1", Email: "luke@sw.com", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Subject != "user-1" || claims.Email != "luke@sw.com" || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := &TokenService{secret: []byte("secret"), ttl: -time.Minute}

	token, err := svc.Issue(ports.Claims{Subject: "user-1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(ports.Claims{Subject: "user-1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}
