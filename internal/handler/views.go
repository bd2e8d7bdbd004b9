package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/engine"
	"github.com/iliyamo/restaurant-ops/internal/model"
)

// views.go serves the read side: every GET runs selectors over a fresh
// snapshot.  The search term comes from the ?q query parameter so displays
// can filter without dispatching anything.

// State handles GET /v1/state and returns the full snapshot.
func (h *OpsHandler) State(c echo.Context) error {
	s, err := h.Store.Snapshot(c.Request().Context())
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, s)
}

// Hydrate handles POST /v1/state.  The body is a complete state payload,
// typically produced by an external loader; it replaces the current state
// wholesale.
func (h *OpsHandler) Hydrate(c echo.Context) error {
	var payload model.RestaurantState
	if err := c.Bind(&payload); err != nil {
		return badRequest(c, "invalid state payload")
	}
	s, err := h.Store.Dispatch(c.Request().Context(), engine.Hydrate{State: payload})
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, s)
}

// Menu handles GET /v1/menu: dishes filtered by ?q and ?category.
func (h *OpsHandler) Menu(c echo.Context) error {
	s, err := h.Store.Snapshot(c.Request().Context())
	if err != nil {
		return unavailable(c)
	}
	items := engine.FilterMenu(s, c.QueryParam("q"), c.QueryParam("category"))
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Inventory handles GET /v1/inventory: all stocked items plus the low-stock
// shortlist.
func (h *OpsHandler) Inventory(c echo.Context) error {
	s, err := h.Store.Snapshot(c.Request().Context())
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items":     engine.FilterInventory(s, c.QueryParam("q")),
		"low_stock": engine.LowStockItems(s),
	})
}

// Cart handles GET /v1/cart with the running totals.
func (h *OpsHandler) Cart(c echo.Context) error {
	s, err := h.Store.Snapshot(c.Request().Context())
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items":    s.Cart,
		"count":    engine.CartCount(s),
		"subtotal": engine.CartSubtotal(s),
		"total":    engine.CartTotal(s),
		"currency": s.CurrencyCode,
	})
}

// Tables handles GET /v1/tables: the floor plan plus the free tables a host
// can still book.
func (h *OpsHandler) Tables(c echo.Context) error {
	s, err := h.Store.Snapshot(c.Request().Context())
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"tables":    s.Tables,
		"available": engine.AvailableTables(s),
	})
}

// Reservations handles GET /v1/reservations.
func (h *OpsHandler) Reservations(c echo.Context) error {
	s, err := h.Store.Snapshot(c.Request().Context())
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": s.Reservations})
}

// Clients handles GET /v1/clients filtered by ?q.
func (h *OpsHandler) Clients(c echo.Context) error {
	s, err := h.Store.Snapshot(c.Request().Context())
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, echo.Map{"clients": engine.FilterClients(s, c.QueryParam("q"))})
}

// KitchenOrders handles GET /v1/kitchen/orders: the live board plus the
// highlighted comanda when one is selected.
func (h *OpsHandler) KitchenOrders(c echo.Context) error {
	s, err := h.Store.Snapshot(c.Request().Context())
	if err != nil {
		return unavailable(c)
	}
	resp := echo.Map{"orders": s.KitchenOrders}
	if sel, ok := engine.SelectedKitchenOrder(s); ok {
		resp["selected"] = sel
	}
	return c.JSON(http.StatusOK, resp)
}

// Notifications handles GET /v1/notifications with the unread count.
func (h *OpsHandler) Notifications(c echo.Context) error {
	s, err := h.Store.Snapshot(c.Request().Context())
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"notifications": s.Notifications,
		"unread":        engine.UnreadNotifications(s),
	})
}

// Dashboard handles GET /v1/dashboard.
func (h *OpsHandler) Dashboard(c echo.Context) error {
	s, err := h.Store.Snapshot(c.Request().Context())
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, s.Dashboard)
}
