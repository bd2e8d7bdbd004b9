package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/engine"
	"github.com/iliyamo/restaurant-ops/internal/model"
)

// MarkNotificationRead handles POST /v1/notifications/:id/read.  The entry is
// acknowledged and the active tab moves to the entry's target; entries
// flagged dismiss-on-read disappear from the feed.
func (h *OpsHandler) MarkNotificationRead(c echo.Context) error {
	s, err := h.Store.Dispatch(c.Request().Context(), engine.MarkNotificationRead{ID: c.Param("id")})
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"notifications": s.Notifications,
		"unread":        engine.UnreadNotifications(s),
		"active_tab":    s.ActiveTab,
	})
}

var tabs = map[model.Tab]bool{
	model.TabDashboard:      true,
	model.TabPOS:            true,
	model.TabInventario:     true,
	model.TabMesas:          true,
	model.TabReservas:       true,
	model.TabClientes:       true,
	model.TabCocina:         true,
	model.TabNotificaciones: true,
}

// SetActiveTab handles POST /v1/ui/tab with a {"tab": "..."} body.
func (h *OpsHandler) SetActiveTab(c echo.Context) error {
	var body struct {
		Tab model.Tab `json:"tab"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if !tabs[body.Tab] {
		return badRequest(c, "unknown tab")
	}
	s, err := h.Store.Dispatch(c.Request().Context(), engine.SetActiveTab{Tab: body.Tab})
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, echo.Map{"active_tab": s.ActiveTab})
}

// SetSearchTerm handles POST /v1/ui/search with a {"term": "..."} body.
func (h *OpsHandler) SetSearchTerm(c echo.Context) error {
	var body struct {
		Term string `json:"term"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	s, err := h.Store.Dispatch(c.Request().Context(), engine.SetSearchTerm{Term: body.Term})
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, echo.Map{"ui": s.UI})
}
