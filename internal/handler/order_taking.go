package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/engine"
	"github.com/iliyamo/restaurant-ops/internal/middleware"
)

// StartOrderTaking handles POST /v1/orders/taking with a {"table_id": n}
// body.  The waiter comes from the advisory session identity, with an
// optional body override for shared terminals.
func (h *OpsHandler) StartOrderTaking(c echo.Context) error {
	var body struct {
		TableID int    `json:"table_id"`
		Waiter  string `json:"waiter"`
	}
	if err := c.Bind(&body); err != nil || body.TableID == 0 {
		return badRequest(c, "table_id is required")
	}
	waiter := body.Waiter
	if waiter == "" {
		waiter = middleware.StaffName(c)
	}
	s, err := h.Store.Dispatch(c.Request().Context(), engine.StartOrderTaking{TableID: body.TableID, Waiter: waiter})
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, echo.Map{"order_taking": s.OrderTaking})
}

// CancelOrderTaking handles DELETE /v1/orders/taking.
func (h *OpsHandler) CancelOrderTaking(c echo.Context) error {
	s, err := h.Store.Dispatch(c.Request().Context(), engine.CancelOrderTaking{})
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, echo.Map{"order_taking": s.OrderTaking})
}

// ConfirmOrderTaking handles POST /v1/orders/taking/confirm.  Requested
// quantities are clamped to live stock; a fully exhausted draft leaves the
// board untouched and the response carries the advisory.  A commit publishes
// order.confirmed the same way checkout does.
func (h *OpsHandler) ConfirmOrderTaking(c echo.Context) error {
	var draft engine.OrderTakingDraft
	if err := c.Bind(&draft); err != nil {
		return badRequest(c, "invalid request body")
	}
	if draft.Waiter == "" {
		draft.Waiter = middleware.StaffName(c)
	}
	prev, err := h.Store.Snapshot(c.Request().Context())
	if err != nil {
		return unavailable(c)
	}
	s, err := h.Store.Dispatch(c.Request().Context(), engine.ConfirmOrderTaking{Draft: draft})
	if err != nil {
		return unavailable(c)
	}
	if s.Counters.Sale > prev.Counters.Sale {
		publishLatestOrder(c, s)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"kitchen":       s.KitchenOrders,
		"inventory":     s.Inventory,
		"notifications": s.Notifications,
		"order_taking":  s.OrderTaking,
	})
}
