package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/oakmont/members-portal/internal/api/view"
	"github.com/oakmont/members-portal/internal/core/domain"
)

func TestRequireAdmin_Anonymous(t *testing.T) {
	e := echo.New()
	store := sessions.NewCookieStore([]byte("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := session.Middleware(store)(RequireAdmin()(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	}))

	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect home, got %q", loc)
	}
}

func TestRequireAdmin_NonAdmin(t *testing.T) {
	e := echo.New()
	e.Renderer = view.NewRenderer()
	store := sessions.NewCookieStore([]byte("test-secret"))
	cookie := newAuthCookie(t, store, "bob", domain.RoleUser)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := session.Middleware(store)(RequireAdmin()(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	}))

	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Not Authorized") {
		t.Fatalf("expected forbidden page, got: %s", rec.Body.String())
	}
}

func TestRequireAdmin_Admin(t *testing.T) {
	e := echo.New()
	store := sessions.NewCookieStore([]byte("test-secret"))
	cookie := newAuthCookie(t, store, "alice", domain.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := session.Middleware(store)(RequireAdmin()(func(c echo.Context) error {
		called = true
		if c.Get("username") != "alice" {
			t.Fatalf("username not injected")
		}
		return c.NoContent(http.StatusOK)
	}))

	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
