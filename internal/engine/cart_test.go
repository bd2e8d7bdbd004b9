package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-ops/internal/model"
)

func menuItem(id int, name string, price float64, stock int) model.MenuItem {
	return model.MenuItem{ID: id, Name: name, Category: "platos", Price: price, Stock: stock, Type: model.ItemTypeDish}
}

func TestAddItemToCart(t *testing.T) {
	inventory := []model.MenuItem{
		menuItem(1, "Paella", 18.50, 2),
		menuItem(2, "Pulpo", 16.00, 0),
	}

	t.Run("appends a new line with qty 1", func(t *testing.T) {
		cart := addItemToCart(nil, inventory[0], inventory)
		require.Len(t, cart, 1)
		assert.Equal(t, 1, cart[0].ID)
		assert.Equal(t, 1, cart[0].Qty)
	})

	t.Run("increments an existing line", func(t *testing.T) {
		cart := []model.CartItem{{MenuItem: inventory[0], Qty: 1}}
		next := addItemToCart(cart, inventory[0], inventory)
		require.Len(t, next, 1)
		assert.Equal(t, 2, next[0].Qty)
		assert.Equal(t, 1, cart[0].Qty, "input cart must not be mutated")
	})

	t.Run("no-op at live stock", func(t *testing.T) {
		cart := []model.CartItem{{MenuItem: inventory[0], Qty: 2}}
		next := addItemToCart(cart, inventory[0], inventory)
		assert.True(t, cartsEqual(cart, next))
	})

	t.Run("no-op for exhausted item", func(t *testing.T) {
		next := addItemToCart(nil, inventory[1], inventory)
		assert.Empty(t, next)
	})
}

func TestUpdateCartItemQty(t *testing.T) {
	inventory := []model.MenuItem{menuItem(1, "Paella", 18.50, 5)}
	cart := []model.CartItem{{MenuItem: inventory[0], Qty: 3}}

	t.Run("positive delta clamped to stock", func(t *testing.T) {
		next := updateCartItemQty(cart, inventory, 1, +10)
		require.Len(t, next, 1)
		assert.Equal(t, 5, next[0].Qty)
	})

	t.Run("line reaching zero is dropped", func(t *testing.T) {
		next := updateCartItemQty(cart, inventory, 1, -3)
		assert.Empty(t, next)
	})

	t.Run("unknown item is a no-op", func(t *testing.T) {
		next := updateCartItemQty(cart, inventory, 99, +1)
		assert.True(t, cartsEqual(cart, next))
	})
}

func TestReconcileCartWithInventory(t *testing.T) {
	inventory := []model.MenuItem{
		menuItem(1, "Paella", 18.50, 2),
		menuItem(2, "Pulpo", 16.00, 0),
	}
	cart := []model.CartItem{
		{MenuItem: inventory[0], Qty: 7},
		{MenuItem: inventory[1], Qty: 1},
	}
	next := reconcileCartWithInventory(cart, inventory)
	require.Len(t, next, 1)
	assert.Equal(t, 1, next[0].ID)
	assert.Equal(t, 2, next[0].Qty)
}

func TestApplyCheckoutToInventoryFloorsAtZero(t *testing.T) {
	inventory := []model.MenuItem{menuItem(1, "Paella", 18.50, 2)}
	cart := []model.CartItem{{MenuItem: inventory[0], Qty: 7}}
	next := applyCheckoutToInventory(inventory, cart)
	require.Len(t, next, 1)
	assert.Equal(t, 0, next[0].Stock)
	assert.Equal(t, 2, inventory[0].Stock, "input inventory must not be mutated")
}

func TestUpdateInventoryStockFloorsAtZero(t *testing.T) {
	inventory := []model.MenuItem{menuItem(1, "Paella", 18.50, 5)}
	next := updateInventoryStock(inventory, 1, -10)
	assert.Equal(t, 0, next[0].Stock)
	next = updateInventoryStock(next, 1, +3)
	assert.Equal(t, 3, next[0].Stock)
}
