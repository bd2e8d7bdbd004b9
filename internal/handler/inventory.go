package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/engine"
	"github.com/iliyamo/restaurant-ops/internal/model"
)

// AddInventoryItem handles POST /v1/inventory/items.  The engine assigns the
// identifier; a client-sent id is ignored.
func (h *OpsHandler) AddInventoryItem(c echo.Context) error {
	var body struct {
		Name     string  `json:"name"`
		Category string  `json:"category"`
		Price    float64 `json:"price"`
		Stock    int     `json:"stock"`
		Unit     string  `json:"unit"`
		Type     string  `json:"type"`
		Img      string  `json:"img"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}
	itemType := model.ItemType(body.Type)
	if itemType != model.ItemTypeDish && itemType != model.ItemTypeIngredient {
		itemType = model.ItemTypeDish
	}
	s, err := h.Store.Dispatch(c.Request().Context(), engine.AddInventoryItem{Item: model.MenuItem{
		Name:     body.Name,
		Category: body.Category,
		Price:    body.Price,
		Stock:    body.Stock,
		Unit:     body.Unit,
		Type:     itemType,
		Img:      body.Img,
	}})
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusCreated, echo.Map{"items": s.Inventory})
}

// AdjustStock handles PATCH /v1/inventory/items/:id/stock with a {"delta": n}
// body.  Stock floors at zero and the cart is reconciled; threshold crossings
// surface in the returned notifications.
func (h *OpsHandler) AdjustStock(c echo.Context) error {
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
	s, err := h.Store.Dispatch(c.Request().Context(), engine.AdjustStock{ItemID: itemID, Delta: body.Delta})
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items":         s.Inventory,
		"cart":          s.Cart,
		"notifications": s.Notifications,
	})
}
