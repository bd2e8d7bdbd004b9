package handler

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/engine"
	"github.com/iliyamo/restaurant-ops/internal/middleware"
	"github.com/iliyamo/restaurant-ops/internal/model"
	q "github.com/iliyamo/restaurant-ops/internal/queue"
	queuepub "github.com/iliyamo/restaurant-ops/internal/service"
)

// AddCartItem handles POST /v1/cart/items.  The body names an inventory item
// by id; one unit is staged.  An exhausted item still returns 200: the new
// state carries the "Stock Insuficiente" advisory instead of an error.
func (h *OpsHandler) AddCartItem(c echo.Context) error {
	var body struct {
		ItemID int `json:"item_id"`
	}
	if err := c.Bind(&body); err != nil || body.ItemID == 0 {
		return badRequest(c, "item_id is required")
	}
	prev, err := h.Store.Snapshot(c.Request().Context())
	if err != nil {
		return unavailable(c)
	}
	item, ok := findItem(prev.Inventory, body.ItemID)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
	}
	s, err := h.Store.Dispatch(c.Request().Context(), engine.AddToCart{Item: item})
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, cartView(s))
}

// UpdateCartItem handles PATCH /v1/cart/items/:id with a {"delta": n} body.
func (h *OpsHandler) UpdateCartItem(c echo.Context) error {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil || itemID == 0 {
		return badRequest(c, "invalid item id")
	}
	var body struct {
		Delta int `json:"delta"`
	}
	if err := c.Bind(&body); err != nil || body.Delta == 0 {
		return badRequest(c, "delta is required")
	}
	s, err := h.Store.Dispatch(c.Request().Context(), engine.UpdateCartQty{ItemID: itemID, Delta: body.Delta})
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, cartView(s))
}

// ClearCart handles DELETE /v1/cart.
func (h *OpsHandler) ClearCart(c echo.Context) error {
	s, err := h.Store.Dispatch(c.Request().Context(), engine.ClearCart{})
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, cartView(s))
}

// OpenCheckout handles POST /v1/checkout and raises the checkout modal flag.
func (h *OpsHandler) OpenCheckout(c echo.Context) error {
	s, err := h.Store.Dispatch(c.Request().Context(), engine.OpenCheckout{})
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, echo.Map{"ui": s.UI})
}

// CloseCheckout handles DELETE /v1/checkout.
func (h *OpsHandler) CloseCheckout(c echo.Context) error {
	s, err := h.Store.Dispatch(c.Request().Context(), engine.CloseCheckout{})
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, echo.Map{"ui": s.UI})
}

// ConfirmCheckout handles POST /v1/checkout/confirm.  The waiter is stamped
// from the advisory session identity when present.  When the commit produced
// a sale, an order.confirmed event goes out after the state change; publish
// failures are logged and never fail the request.
func (h *OpsHandler) ConfirmCheckout(c echo.Context) error {
	prev, err := h.Store.Snapshot(c.Request().Context())
	if err != nil {
		return unavailable(c)
	}
	s, err := h.Store.Dispatch(c.Request().Context(), engine.ConfirmCheckout{Waiter: middleware.StaffName(c)})
	if err != nil {
		return unavailable(c)
	}
	if s.Counters.Sale > prev.Counters.Sale {
		publishLatestOrder(c, s)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"cart":          s.Cart,
		"inventory":     s.Inventory,
		"kitchen":       s.KitchenOrders,
		"notifications": s.Notifications,
		"ui":            s.UI,
	})
}

func cartView(s model.RestaurantState) echo.Map {
	return echo.Map{
		"items":         s.Cart,
		"count":         engine.CartCount(s),
		"subtotal":      engine.CartSubtotal(s),
		"total":         engine.CartTotal(s),
		"notifications": s.Notifications,
	}
}

func findItem(inventory []model.MenuItem, id int) (model.MenuItem, bool) {
	for _, it := range inventory {
		if it.ID == id {
			return it, true
		}
	}
	return model.MenuItem{}, false
}

// publishLatestOrder emits an order.confirmed event for the sale the commit
// just recorded.  The newest sale and its comanda sit at the head of their
// slices.
func publishLatestOrder(c echo.Context, s model.RestaurantState) {
	if len(s.SalesHistory) == 0 {
		return
	}
	sale := s.SalesHistory[0]
	event := q.OrderConfirmedEvent{
		TableID:     sale.TableID,
		Total:       sale.Total,
		Currency:    s.CurrencyCode,
		ConfirmedAt: sale.CreatedAt.UTC().Format(time.RFC3339),
	}
	for _, line := range sale.Items {
		event.Items = append(event.Items, q.OrderLine{Name: line.Name, Qty: line.Qty})
	}
	if len(s.KitchenOrders) > 0 {
		event.OrderID = s.KitchenOrders[0].ID
		event.Waiter = s.KitchenOrders[0].Waiter
	}
	if err := queuepub.PublishOrderConfirmed(c.Request().Context(), event); err != nil {
		log.Printf("order-publisher: %v", err)
	}
}
