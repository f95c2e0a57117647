package handler

import (
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/oakmont/members-portal/internal/api/metrics"
	"github.com/oakmont/members-portal/internal/core/domain"
	"github.com/oakmont/members-portal/internal/core/ports"
)

// AuthHandler serves the signup, login and logout routes.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// ShowSignup renders the empty signup form.
func (h *AuthHandler) ShowSignup(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.gohtml", signupForm("", "", ""))
}

// Signup validates the form, creates the account, authenticates the session
// and redirects to the members page. Validation failures re-render the form
// with the first field error, preserving username and email but never the
// password.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.Render(http.StatusOK, "signup.gohtml", signupForm(msgInvalidForm, "", ""))
	}
	if err := c.Validate(&req); err != nil {
		return c.Render(http.StatusOK, "signup.gohtml", signupForm(err.Error(), req.Username, req.Email))
	}

	user, err := h.authService.SignUp(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}
	metrics.SignupsTotal.Inc()

	if err := h.authenticate(c, user); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/members")
}

// ShowLogin renders the empty login form.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login.gohtml", loginForm("", ""))
}

// Login authenticates the email/password pair. Both an unknown email and a
// wrong password render the same generic message so accounts cannot be
// enumerated.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
		return c.Render(http.StatusOK, "login.gohtml", loginForm(msgInvalidForm, ""))
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
		return c.Render(http.StatusOK, "login.gohtml", loginForm(msgBadCombination, req.Email))
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			return c.Render(http.StatusOK, "login.gohtml", loginForm(msgBadCombination, req.Email))
		}
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	if err := h.authenticate(c, user); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/members")
}

// Logout destroys the server-side session and expires the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := session.Get(domain.SessionCookieName, c)
	if err == nil {
		sess.Values = make(map[interface{}]interface{})
		sess.Options.MaxAge = -1
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			return err
		}
		metrics.SessionsDestroyedTotal.Inc()
	}
	return c.Redirect(http.StatusFound, "/")
}

// authenticate marks the request's session as logged in for user. A stale
// or tampered cookie still yields a usable fresh session from the store.
func (h *AuthHandler) authenticate(c echo.Context, user *domain.User) error {
	sess, err := session.Get(domain.SessionCookieName, c)
	if sess == nil {
		return err
	}
	sess.Values[domain.SessionKeyAuthenticated] = true
	sess.Values[domain.SessionKeyUsername] = user.Username
	sess.Values[domain.SessionKeyUserType] = user.UserType
	return sess.Save(c.Request(), c.Response())
}
