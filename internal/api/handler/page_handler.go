package handler

import (
	"math/rand/v2"
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/oakmont/members-portal/internal/core/domain"
	"github.com/oakmont/members-portal/internal/core/ports"
)

var memberImages = []string{
	"/public/donkey.gif",
	"/public/shrek.gif",
	"/public/pus.gif",
}

// PageHandler serves the home and members pages.
type PageHandler struct {
	visits ports.VisitCounter
	log    zerolog.Logger
}

func NewPageHandler(visits ports.VisitCounter, log zerolog.Logger) *PageHandler {
	return &PageHandler{visits: visits, log: log}
}

// Home shows the current session state: greeting and member links when
// logged in, signup/login links otherwise.
func (h *PageHandler) Home(c echo.Context) error {
	s := domain.Session{}
	if sess, err := session.Get(domain.SessionCookieName, c); err == nil {
		s = domain.SessionFromValues(sess.Values)
	}
	return c.Render(http.StatusOK, "index.gohtml", echo.Map{
		"Authenticated": s.Authenticated,
		"Username":      s.Username,
		"UserType":      s.UserType,
	})
}

// Members renders the personalized members page with one of the static
// images chosen at random. Reached only through RequireAuth.
func (h *PageHandler) Members(c echo.Context) error {
	username, _ := c.Get("username").(string)

	var visits int64
	if h.visits != nil {
		n, err := h.visits.Increment(c.Request().Context(), username)
		if err != nil {
			// The counter is cosmetic; the page renders without it.
			h.log.Warn().Err(err).Str("username", username).Msg("visit counter unavailable")
		} else {
			visits = n
		}
	}

	return c.Render(http.StatusOK, "members.gohtml", echo.Map{
		"Username": username,
		"Image":    memberImages[rand.IntN(len(memberImages))],
		"Visits":   visits,
	})
}
