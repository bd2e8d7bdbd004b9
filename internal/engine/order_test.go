package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-ops/internal/model"
)

func TestPrepareOrder(t *testing.T) {
	now := time.Date(2026, 3, 14, 13, 30, 0, 0, time.UTC)

	t.Run("applies the service fee on top of the subtotal", func(t *testing.T) {
		inventory := []model.MenuItem{menuItem(1, "Paella", 10.00, 5)}
		requested := []model.CartItem{{MenuItem: inventory[0], Qty: 2}}
		var c model.Counters
		p := prepareOrder(&c, requested, inventory, nil, 0, "Ana", "", now)
		require.NotNil(t, p)
		assert.InDelta(t, 22.00, p.Total, 1e-9)
		assert.False(t, p.WasAdjusted)
		assert.Equal(t, "ORD-001", p.Order.ID)
		assert.Equal(t, "sale-1", p.Sale.ID)
		assert.Equal(t, model.KitchenPending, p.Order.Status)
		assert.Equal(t, "Ana", p.Order.Waiter)
	})

	t.Run("clamps oversubscribed lines and flags the adjustment", func(t *testing.T) {
		inventory := []model.MenuItem{menuItem(1, "Paella", 10.00, 4)}
		requested := []model.CartItem{{MenuItem: inventory[0], Qty: 12}}
		var c model.Counters
		p := prepareOrder(&c, requested, inventory, nil, 0, "", "", now)
		require.NotNil(t, p)
		assert.True(t, p.WasAdjusted)
		require.Len(t, p.Order.Items, 1)
		assert.Equal(t, 4, p.Order.Items[0].Qty)
		assert.Equal(t, 0, p.NextInventory[0].Stock)
	})

	t.Run("returns nil when nothing is available", func(t *testing.T) {
		inventory := []model.MenuItem{menuItem(1, "Paella", 10.00, 0)}
		requested := []model.CartItem{{MenuItem: inventory[0], Qty: 3}}
		var c model.Counters
		assert.Nil(t, prepareOrder(&c, requested, inventory, nil, 0, "", "", now))
		assert.Equal(t, 0, c.Order, "no order id may be consumed on abort")
		assert.Equal(t, 0, c.Sale)
	})

	t.Run("replaces the open comanda of the same table", func(t *testing.T) {
		inventory := []model.MenuItem{
			menuItem(1, "Paella", 10.00, 5),
			menuItem(2, "Pulpo", 16.00, 5),
		}
		existing := []model.KitchenOrder{{
			ID:      "ORD-001",
			Items:   []model.OrderLine{{Name: "Paella", Qty: 1}},
			Status:  model.KitchenCooking,
			TableID: 102,
		}}
		requested := []model.CartItem{{MenuItem: inventory[1], Qty: 2}}
		c := model.Counters{Order: 1, Sale: 1}
		p := prepareOrder(&c, requested, inventory, existing, 102, "", "sin sal", now)
		require.NotNil(t, p)
		require.Len(t, p.KitchenOrders, 1)
		assert.Equal(t, "ORD-001", p.Order.ID, "same table keeps its comanda id")
		assert.Equal(t, model.KitchenCooking, p.Order.Status, "board position survives the line update")
		require.Len(t, p.Order.Items, 1)
		assert.Equal(t, "Pulpo", p.Order.Items[0].Name)
		assert.Equal(t, "sin sal", p.Order.Notes)
		assert.Equal(t, 1, c.Order, "no new order id when replacing")
		assert.Equal(t, 2, c.Sale, "a replacement still records a new sale")
	})

	t.Run("another table gets its own comanda", func(t *testing.T) {
		inventory := []model.MenuItem{menuItem(1, "Paella", 10.00, 5)}
		existing := []model.KitchenOrder{{ID: "ORD-001", TableID: 102, Status: model.KitchenPending}}
		requested := []model.CartItem{{MenuItem: inventory[0], Qty: 1}}
		c := model.Counters{Order: 1}
		p := prepareOrder(&c, requested, inventory, existing, 105, "", "", now)
		require.NotNil(t, p)
		require.Len(t, p.KitchenOrders, 2)
		assert.Equal(t, "ORD-002", p.KitchenOrders[0].ID, "new comanda goes to the head")
		assert.Equal(t, "ORD-001", p.KitchenOrders[1].ID)
	})
}
