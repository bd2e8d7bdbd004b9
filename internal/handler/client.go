package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/engine"
)

// SaveClient handles POST /v1/clients.  An empty id creates a client (tier
// nuevo when none is given); a set id updates name, tier and preferences of
// an existing one.  Updating an unknown id changes nothing.
func (h *OpsHandler) SaveClient(c echo.Context) error {
	var draft engine.ClientDraft
	if err := c.Bind(&draft); err != nil {
		return badRequest(c, "invalid request body")
	}
	if draft.Name == "" {
		return badRequest(c, "name is required")
	}
	s, err := h.Store.Dispatch(c.Request().Context(), engine.SaveClient{Draft: draft})
	if err != nil {
		return unavailable(c)
	}
	status := http.StatusCreated
	if draft.ID != "" {
		status = http.StatusOK
	}
	return c.JSON(status, echo.Map{"clients": s.Clients})
}
