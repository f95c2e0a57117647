package middleware

import (
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/oakmont/members-portal/internal/core/domain"
)

// RequireAdmin gates a route on an authenticated admin session. It repeats
// the authentication check rather than assuming RequireAuth ran first, so
// the two guards stay independently composable: anonymous requests are
// redirected home, authenticated non-admins get the forbidden page.
func RequireAdmin() echo.MiddlewareFunc {
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
			if !s.IsAdmin() {
				return c.Render(http.StatusForbidden, "forbidden.gohtml", nil)
			}

			c.Set("username", s.Username)
			c.Set("user_type", s.UserType)

			return next(c)
		}
	}
}
