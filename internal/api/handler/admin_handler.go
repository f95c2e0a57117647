package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oakmont/members-portal/internal/api/metrics"
	"github.com/oakmont/members-portal/internal/core/ports"
)

// AdminHandler serves the admin dashboard and the promote/demote actions.
// All routes sit behind the admin guard.
type AdminHandler struct {
	userService ports.UserService
}

func NewAdminHandler(userService ports.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

// Dashboard lists every user with a promote or demote link per row.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "admin.gohtml", echo.Map{"Users": users})
}

// Promote grants the admin role to the user named in the query string.
func (h *AdminHandler) Promote(c echo.Context) error {
	if err := h.userService.Promote(c.Request().Context(), c.QueryParam("user")); err != nil {
		return err
	}
	metrics.RoleChangesTotal.WithLabelValues("promote").Inc()
	return c.Redirect(http.StatusFound, "/admin")
}

// Demote returns the named user to the default role.
func (h *AdminHandler) Demote(c echo.Context) error {
	if err := h.userService.Demote(c.Request().Context(), c.QueryParam("user")); err != nil {
		return err
	}
	metrics.RoleChangesTotal.WithLabelValues("demote").Inc()
	return c.Redirect(http.StatusFound, "/admin")
}
