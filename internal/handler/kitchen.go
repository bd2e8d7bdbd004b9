package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/engine"
	"github.com/iliyamo/restaurant-ops/internal/model"
)

var kitchenStatuses = map[model.KitchenOrderStatus]bool{
	model.KitchenPending: true,
	model.KitchenCooking: true,
	model.KitchenReady:   true,
}

// SetKitchenOrderStatus handles POST /v1/kitchen/orders/:id/status with a
// {"status": "..."} body and moves the comanda across the board.
func (h *OpsHandler) SetKitchenOrderStatus(c echo.Context) error {
	var body struct {
		Status model.KitchenOrderStatus `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if !kitchenStatuses[body.Status] {
		return badRequest(c, "unknown kitchen status")
	}
	s, err := h.Store.Dispatch(c.Request().Context(), engine.SetKitchenOrderStatus{
		OrderID: c.Param("id"),
		Status:  body.Status,
	})
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": s.KitchenOrders})
}

// CompleteKitchenOrder handles POST /v1/kitchen/orders/:id/complete and
// removes the served comanda from the board.
func (h *OpsHandler) CompleteKitchenOrder(c echo.Context) error {
	s, err := h.Store.Dispatch(c.Request().Context(), engine.CompleteKitchenOrder{OrderID: c.Param("id")})
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": s.KitchenOrders})
}

// SelectKitchenOrder handles POST /v1/kitchen/orders/:id/select and records
// the comanda highlighted on the kitchen screen.
func (h *OpsHandler) SelectKitchenOrder(c echo.Context) error {
	s, err := h.Store.Dispatch(c.Request().Context(), engine.SelectKitchenOrder{OrderID: c.Param("id")})
	if err != nil {
		return unavailable(c)
	}
	resp := echo.Map{"orders": s.KitchenOrders}
	if sel, ok := engine.SelectedKitchenOrder(s); ok {
		resp["selected"] = sel
	}
	return c.JSON(http.StatusOK, resp)
}
