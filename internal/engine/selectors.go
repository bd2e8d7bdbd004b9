package engine

import (
	"strings"

	"github.com/iliyamo/restaurant-ops/internal/model"
)

// Selectors are pure projections over a state snapshot.  They never mutate
// their input and carry no cache; every read recomputes from the snapshot it
// is given.

// matches does a case-insensitive substring check, with an empty term
// matching everything.
func matches(value, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}

// FilterMenu returns the sellable dishes matching the term and category.
func FilterMenu(s model.RestaurantState, term, category string) []model.MenuItem {
	out := make([]model.MenuItem, 0, len(s.Inventory))
	for _, it := range s.Inventory {
		if it.Type != model.ItemTypeDish {
			continue
		}
		if category != "" && it.Category != category {
			continue
		}
		if !matches(it.Name, term) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// FilterInventory returns every inventory line matching the term.
func FilterInventory(s model.RestaurantState, term string) []model.MenuItem {
	out := make([]model.MenuItem, 0, len(s.Inventory))
	for _, it := range s.Inventory {
		if matches(it.Name, term) || matches(it.Category, term) {
			out = append(out, it)
		}
	}
	return out
}

// LowStockItems lists the lines whose severity is low or critical.
func LowStockItems(s model.RestaurantState) []model.MenuItem {
	var out []model.MenuItem
	for _, it := range s.Inventory {
		if severityFor(it.Stock) != model.SeverityNone {
			out = append(out, it)
		}
	}
	return out
}

// CartSubtotal sums the cart before the service fee.
func CartSubtotal(s model.RestaurantState) float64 {
	return cartSubtotal(s.Cart)
}

// CartTotal is the subtotal plus the fixed service fee.
func CartTotal(s model.RestaurantState) float64 {
	return cartSubtotal(s.Cart) * (1 + serviceFeeRate)
}

// CartCount is the number of units staged in the cart.
func CartCount(s model.RestaurantState) int {
	n := 0
	for _, l := range s.Cart {
		n += l.Qty
	}
	return n
}

// FilterClients returns clients whose name or tier matches the term.
func FilterClients(s model.RestaurantState, term string) []model.Client {
	out := make([]model.Client, 0, len(s.Clients))
	for _, c := range s.Clients {
		if matches(c.Name, term) || matches(c.Tier, term) {
			out = append(out, c)
		}
	}
	return out
}

// SelectedKitchenOrder resolves the comanda highlighted on the kitchen
// screen.
func SelectedKitchenOrder(s model.RestaurantState) (model.KitchenOrder, bool) {
	for _, o := range s.KitchenOrders {
		if o.ID == s.UI.SelectedOrderID {
			return o, true
		}
	}
	return model.KitchenOrder{}, false
}

// AvailableTables lists the tables a new reservation could bind to.
func AvailableTables(s model.RestaurantState) []model.TableInfo {
	var out []model.TableInfo
	for _, t := range s.Tables {
		if t.Status == model.TableDisponible {
			out = append(out, t)
		}
	}
	return out
}

// UnreadNotifications counts the feed entries still pending acknowledgment.
func UnreadNotifications(s model.RestaurantState) int {
	n := 0
	for _, ntf := range s.Notifications {
		if !ntf.Read {
			n++
		}
	}
	return n
}
