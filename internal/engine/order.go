package engine

import (
	"fmt"
	"time"

	"github.com/iliyamo/restaurant-ops/internal/model"
)

// serviceFeeRate is the fixed service surcharge applied to every order.
const serviceFeeRate = 0.10

// preparedOrder is the consistent outcome of a successful order preparation:
// reconciled lines, the resulting inventory, the kitchen board and the sales
// record, all computed together so the reducer can commit them atomically.
type preparedOrder struct {
	Lines         []model.CartItem
	Total         float64
	WasAdjusted   bool
	NextInventory []model.MenuItem
	KitchenOrders []model.KitchenOrder
	Order         model.KitchenOrder
	Sale          model.SalesRecord
}

// cartSubtotal sums the reconciled line prices before the service fee.
func cartSubtotal(lines []model.CartItem) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Price * float64(l.Qty)
	}
	return sum
}

// orderLines projects cart lines into kitchen order lines.
func orderLines(lines []model.CartItem) []model.OrderLine {
	out := make([]model.OrderLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, model.OrderLine{Name: l.Name, Qty: l.Qty})
	}
	return out
}

// prepareOrder reconciles the requested lines against live stock and builds
// everything a committed order touches.  Partial availability is resolved by
// clamping and flagged through WasAdjusted; only total unavailability returns
// nil, in which case the caller must leave all other state untouched.
//
// A table with an open comanda gets its line list replaced instead of a
// second comanda, which is how waiters add items to an in-progress tab.
func prepareOrder(c *model.Counters, requested []model.CartItem, inventory []model.MenuItem, existing []model.KitchenOrder, tableID int, waiter, notes string, now time.Time) *preparedOrder {
	lines := reconcileCartWithInventory(requested, inventory)
	if len(lines) == 0 {
		return nil
	}
	adjusted := !cartsEqual(lines, requested)
	total := cartSubtotal(lines) * (1 + serviceFeeRate)
	nextInventory := applyCheckoutToInventory(inventory, lines)

	var order model.KitchenOrder
	orders := make([]model.KitchenOrder, 0, len(existing)+1)
	replaced := false
	if tableID != 0 {
		for _, o := range existing {
			if !replaced && o.TableID == tableID {
				o.Items = orderLines(lines)
				if notes != "" {
					o.Notes = notes
				}
				order = o
				replaced = true
			}
			orders = append(orders, o)
		}
	} else {
		orders = append(orders, existing...)
	}
	if !replaced {
		c.Order++
		order = model.KitchenOrder{
			ID:      fmt.Sprintf("ORD-%03d", c.Order),
			Items:   orderLines(lines),
			Status:  model.KitchenPending,
			Waiter:  waiter,
			Notes:   notes,
			TableID: tableID,
		}
		orders = append([]model.KitchenOrder{order}, orders...)
	}

	c.Sale++
	sale := model.SalesRecord{
		ID:        fmt.Sprintf("sale-%d", c.Sale),
		Total:     total,
		Items:     orderLines(lines),
		TableID:   tableID,
		CreatedAt: now,
	}

	return &preparedOrder{
		Lines:         lines,
		Total:         total,
		WasAdjusted:   adjusted,
		NextInventory: nextInventory,
		KitchenOrders: orders,
		Order:         order,
		Sale:          sale,
	}
}
