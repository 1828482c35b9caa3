package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/conexa/starwars-api/internal/core/domain"
)

func runRBAC(t *testing.T, mw echo.MiddlewareFunc, role string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestRBAC_AdminAllowedOnAdminRoute(t *testing.T) {
	rec, called := runRBAC(t, RBAC(domain.RoleAdmin), domain.RoleAdmin)
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected pass, got code=%d called=%v", rec.Code, called)
	}
}

func TestRBAC_UserForbiddenOnAdminRoute(t *testing.T) {
	rec, called := runRBAC(t, RBAC(domain.RoleAdmin), domain.RoleUser)
	if called {
		t.Fatalf("handler must not run")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRBAC_NoDeclaredRolesPassesThrough(t *testing.T) {
	// Unauthenticated request, no attached identity.
	rec, called := runRBAC(t, RBAC(), "")
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("empty role set must allow, got code=%d called=%v", rec.Code, called)
	}
}

func TestRBAC_MissingIdentityForbidden(t *testing.T) {
	rec, called := runRBAC(t, RBAC(domain.RoleAdmin, domain.RoleUser), "")
	if called {
		t.Fatalf("handler must not run without an attached identity")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRBAC_NoHierarchy(t *testing.T) {
	// ADMIN is not implicitly granted USER-restricted routes.
	rec, called := runRBAC(t, RBAC(domain.RoleUser), domain.RoleAdmin)
	if called {
		t.Fatalf("membership is exact, handler must not run")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
