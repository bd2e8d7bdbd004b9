package engine

import "github.com/iliyamo/restaurant-ops/internal/model"

// InitialState is the engine's starting point before any hydrate: an empty
// house with the default floor plan.  Demo seed data lives in the bootstrap
// package; the engine itself knows nothing about where state comes from.
func InitialState() model.RestaurantState {
	tables := make([]model.TableInfo, 0, 8)
	for id := 101; id <= 108; id++ {
		tables = append(tables, model.TableInfo{ID: id, Status: model.TableDisponible})
	}
	return model.RestaurantState{
		Tables:       tables,
		ActiveTab:    model.TabDashboard,
		CurrencyCode: "USD",
	}
}
