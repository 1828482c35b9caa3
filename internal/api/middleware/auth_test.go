package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/conexa/starwars-api/internal/core/domain"
	"github.com/conexa/starwars-api/internal/core/ports"
	"github.com/conexa/starwars-api/internal/core/service"
)

func issueToken(t *testing.T, tokens ports.TokenService, claims ports.Claims) string {
	t.Helper()
	token, err := tokens.Issue(claims)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)
	signed := issueToken(t, tokens, ports.Claims{Subject: "user-1", Email: "luke@sw.com", Role: domain.RoleUser})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(tokens)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("sub") != "user-1" {
			t.Fatalf("sub not set")
		}
		if c.Get("email") != "luke@sw.com" {
			t.Fatalf("email not set")
		}
		if c.Get("role") != domain.RoleUser {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(tokens)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(tokens)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ForeignSignature(t *testing.T) {
	e := echo.New()
	signed := issueToken(t, service.NewTokenService("other-secret", time.Hour), ports.Claims{Subject: "user-1", Role: domain.RoleUser})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(service.NewTokenService("secret", time.Hour))
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user-1",
		"role": domain.RoleUser,
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	expired, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(tokens)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
