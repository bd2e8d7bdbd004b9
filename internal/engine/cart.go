package engine

import "github.com/iliyamo/restaurant-ops/internal/model"

// stockFor returns the live stock of an inventory item, 0 when unknown.
func stockFor(inventory []model.MenuItem, itemID int) int {
	for _, it := range inventory {
		if it.ID == itemID {
			return it.Stock
		}
	}
	return 0
}

// addItemToCart appends one unit of item to the cart, bounded by live stock.
// When stock is exhausted, or the line already sits at live stock, the cart
// is returned unchanged; callers detect the no-op by comparing lengths and
// quantities and surface the advisory themselves.
func addItemToCart(cart []model.CartItem, item model.MenuItem, inventory []model.MenuItem) []model.CartItem {
	live := stockFor(inventory, item.ID)
	if live <= 0 {
		return cart
	}
	for i, line := range cart {
		if line.ID != item.ID {
			continue
		}
		if line.Qty >= live {
			return cart
		}
		next := make([]model.CartItem, len(cart))
		copy(next, cart)
		next[i].Qty++
		return next
	}
	next := make([]model.CartItem, len(cart), len(cart)+1)
	copy(next, cart)
	return append(next, model.CartItem{MenuItem: item, Qty: 1})
}

// updateCartItemQty moves a line's quantity by delta, clamped to [0, live
// stock].  Lines reaching zero are dropped.  An unknown item id is a no-op.
func updateCartItemQty(cart []model.CartItem, inventory []model.MenuItem, itemID, delta int) []model.CartItem {
	next := make([]model.CartItem, 0, len(cart))
	for _, line := range cart {
		if line.ID != itemID {
			next = append(next, line)
			continue
		}
		qty := line.Qty + delta
		if live := stockFor(inventory, itemID); qty > live {
			qty = live
		}
		if qty <= 0 {
			continue
		}
		line.Qty = qty
		next = append(next, line)
	}
	return next
}

// updateInventoryStock moves an item's stock by delta, floored at zero.
func updateInventoryStock(inventory []model.MenuItem, itemID, delta int) []model.MenuItem {
	next := make([]model.MenuItem, len(inventory))
	copy(next, inventory)
	for i, it := range next {
		if it.ID != itemID {
			continue
		}
		stock := it.Stock + delta
		if stock < 0 {
			stock = 0
		}
		next[i].Stock = stock
		break
	}
	return next
}

// reconcileCartWithInventory re-clamps every cart line to the current live
// stock and drops emptied lines.  Runs before any operation that consumes the
// cart, so a committed order can never exceed real stock even when stock
// moved after the items were added.
func reconcileCartWithInventory(cart []model.CartItem, inventory []model.MenuItem) []model.CartItem {
	next := make([]model.CartItem, 0, len(cart))
	for _, line := range cart {
		qty := line.Qty
		if live := stockFor(inventory, line.ID); qty > live {
			qty = live
		}
		if qty <= 0 {
			continue
		}
		line.Qty = qty
		next = append(next, line)
	}
	return next
}

// applyCheckoutToInventory subtracts committed cart quantities from stock,
// floored at zero.  Quantities are aggregated per item id first; a cart
// should never carry duplicate ids, but the subtraction stays correct if one
// does.
func applyCheckoutToInventory(inventory []model.MenuItem, cart []model.CartItem) []model.MenuItem {
	wanted := make(map[int]int, len(cart))
	for _, line := range cart {
		wanted[line.ID] += line.Qty
	}
	next := make([]model.MenuItem, len(inventory))
	copy(next, inventory)
	for i, it := range next {
		qty, ok := wanted[it.ID]
		if !ok {
			continue
		}
		stock := it.Stock - qty
		if stock < 0 {
			stock = 0
		}
		next[i].Stock = stock
	}
	return next
}

// cartsEqual reports whether two carts hold the same lines in the same order.
func cartsEqual(a, b []model.CartItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Qty != b[i].Qty {
			return false
		}
	}
	return true
}
