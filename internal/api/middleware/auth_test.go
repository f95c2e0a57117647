package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/oakmont/members-portal/internal/core/domain"
)

// newAuthCookie runs a priming request through store to produce a cookie for
// an authenticated session with the given identity.
func newAuthCookie(t *testing.T, store sessions.Store, username, role string) *http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	sess, err := store.New(req, domain.SessionCookieName)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	sess.Values[domain.SessionKeyAuthenticated] = true
	sess.Values[domain.SessionKeyUsername] = username
	sess.Values[domain.SessionKeyUserType] = role
	if err := store.Save(req, rec, sess); err != nil {
		t.Fatalf("save session: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("expected session cookie")
	}
	return cookies[0]
}

func TestRequireAuth_Anonymous(t *testing.T) {
	e := echo.New()
	store := sessions.NewCookieStore([]byte("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/members", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := session.Middleware(store)(RequireAuth()(func(c echo.Context) error {
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

func TestRequireAuth_Authenticated(t *testing.T) {
	e := echo.New()
	store := sessions.NewCookieStore([]byte("test-secret"))
	cookie := newAuthCookie(t, store, "alice", domain.RoleUser)

	req := httptest.NewRequest(http.MethodGet, "/members", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := session.Middleware(store)(RequireAuth()(func(c echo.Context) error {
		called = true
		if c.Get("username") != "alice" {
			t.Fatalf("username not injected")
		}
		if c.Get("user_type") != domain.RoleUser {
			t.Fatalf("user_type not injected")
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

func TestRequireAuth_TamperedCookie(t *testing.T) {
	e := echo.New()
	store := sessions.NewCookieStore([]byte("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/members", nil)
	req.AddCookie(&http.Cookie{Name: domain.SessionCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := session.Middleware(store)(RequireAuth()(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	}))

	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
}
