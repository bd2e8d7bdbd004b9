package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/engine"
	"github.com/iliyamo/restaurant-ops/internal/model"
)

var tableActions = map[model.TableAction]bool{
	model.TableActionOcupar:     true,
	model.TableActionLiberar:    true,
	model.TableActionLimpiar:    true,
	model.TableActionFinLimpiar: true,
}

// TableAction handles POST /v1/tables/:id/action with an {"action": "..."}
// body.  The operation is staged and confirmed in one request: stage records
// the pending pair, confirm applies it.  An action that does not fit the
// table's current status leaves the floor plan unchanged.
func (h *OpsHandler) TableAction(c echo.Context) error {
	tableID, err := parseTableID(c)
	if err != nil {
		return err
	}
	var body struct {
		Action model.TableAction `json:"action"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if !tableActions[body.Action] {
		return badRequest(c, "unknown table action")
	}
	ctx := c.Request().Context()
	if _, err := h.Store.Dispatch(ctx, engine.StageTableAction{TableID: tableID, Action: body.Action}); err != nil {
		return unavailable(c)
	}
	s, err := h.Store.Dispatch(ctx, engine.ConfirmTableAction{})
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"tables":        s.Tables,
		"reservations":  s.Reservations,
		"notifications": s.Notifications,
	})
}
