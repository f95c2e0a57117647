package middleware

import (
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/oakmont/members-portal/internal/core/domain"
)

// RequireAuth gates a route on an authenticated session. Anonymous requests
// are redirected to the home page; authenticated ones get the session's
// username and user_type injected into the echo context.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.Get(domain.SessionCookieName, c)
			if err != nil {
				return c.Redirect(http.StatusFound, "/")
			}

			s := domain.SessionFromValues(sess.Values)
			if !s.Authenticated {
				return c.Redirect(http.StatusFound, "/")
			}

			c.Set("username", s.Username)
			c.Set("user_type", s.UserType)

			return next(c)
		}
	}
}
