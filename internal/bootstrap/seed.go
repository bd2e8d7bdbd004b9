package bootstrap

import (
	"time"

	"github.com/iliyamo/restaurant-ops/internal/engine"
	"github.com/iliyamo/restaurant-ops/internal/model"
)

// DemoState returns the built-in seed used when no seed database is
// configured.  It covers every tab with plausible data: a menu with one
// low-stock dish, tables in each status, reservations for both tiers and a
// small client book with visit history.
func DemoState(now time.Time) model.RestaurantState {
	state := engine.InitialState()

	state.Inventory = []model.MenuItem{
		{ID: 1, Name: "Paella Valenciana", Category: "platos", Price: 18.50, Stock: 12, Unit: "raciones", Type: model.ItemTypeDish},
		{ID: 2, Name: "Pulpo a la Gallega", Category: "platos", Price: 16.00, Stock: 8, Unit: "raciones", Type: model.ItemTypeDish},
		{ID: 3, Name: "Croquetas de Jamón", Category: "entrantes", Price: 7.50, Stock: 20, Unit: "raciones", Type: model.ItemTypeDish},
		{ID: 4, Name: "Tarta de Santiago", Category: "postres", Price: 6.00, Stock: 3, Unit: "raciones", Type: model.ItemTypeDish},
		{ID: 5, Name: "Rioja Crianza", Category: "bebidas", Price: 4.50, Stock: 30, Unit: "copas", Type: model.ItemTypeDish},
		{ID: 6, Name: "Agua Mineral", Category: "bebidas", Price: 1.80, Stock: 48, Unit: "botellas", Type: model.ItemTypeDish},
		{ID: 7, Name: "Arroz Bomba", Category: "despensa", Price: 3.20, Stock: 25, Unit: "kg", Type: model.ItemTypeIngredient},
		{ID: 8, Name: "Aceite de Oliva", Category: "despensa", Price: 9.80, Stock: 10, Unit: "l", Type: model.ItemTypeIngredient},
	}

	state.Tables = []model.TableInfo{
		{ID: 101, Status: model.TableDisponible},
		{ID: 102, Status: model.TableOcupada, Guests: 4, CurrentSession: &model.TableSession{
			Name: "Sr. Ferrer", Time: "13:30", Guests: 4, Type: "estandar",
		}},
		{ID: 103, Status: model.TableDisponible},
		{ID: 104, Status: model.TableReservada, Guests: 2},
		{ID: 105, Status: model.TableDisponible},
		{ID: 106, Status: model.TableLimpieza, CleaningSince: now.Format("15:04")},
		{ID: 107, Status: model.TableDisponible},
		{ID: 108, Status: model.TableDisponible},
	}

	state.Reservations = []model.Reservation{
		{ID: "rsv-001", Name: "Sr. Ferrer", Time: "13:30", Guests: 4, Table: 102, Type: "estandar", Status: model.ReservationEnCurso},
		{ID: "rsv-002", Name: "Familia Ortega", Time: "14:00", Guests: 2, Table: 104, Type: "estandar", Status: model.ReservationConfirmado},
		{ID: "rsv-003", Name: "Dña. Salas", Time: "21:00", Guests: 6, Table: model.TableUnassigned, Type: "vip", Status: model.ReservationVIPPendiente},
		{ID: "rsv-004", Name: "Grupo Mistral", Time: "21:30", Guests: 3, Table: model.TableUnassigned, Type: "estandar", Status: model.ReservationPendiente},
	}

	state.Clients = []model.Client{
		{
			ID: "cli-1", Name: "Sr. Ferrer", Tier: "regular", Visits: 9, Spend: 412.80,
			Preferences: "mesa junto a la ventana",
			History: []model.VisitRecord{
				{Date: now.AddDate(0, 0, -12), Total: 54.30},
				{Date: now.AddDate(0, 0, -3), Total: 61.90},
			},
		},
		{
			ID: "cli-2", Name: "Dña. Salas", Tier: "vip", Visits: 21, Spend: 1480.00,
			Preferences: "sin marisco",
			History: []model.VisitRecord{
				{Date: now.AddDate(0, 0, -7), Total: 96.20},
			},
		},
		{ID: "cli-3", Name: "Familia Ortega", Tier: "nuevo", Visits: 1, Spend: 38.50},
	}

	state.Counters.Reservation = 4
	state.Counters.Client = 3
	return state
}
