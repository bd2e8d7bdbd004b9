package engine

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/iliyamo/restaurant-ops/internal/model"
)

// propState is the starting point for the property runs: a small menu with
// mixed stock levels plus the default floor plan.
func propState() model.RestaurantState {
	s := InitialState()
	s.Inventory = []model.MenuItem{
		menuItem(1, "Paella", 18.50, 12),
		menuItem(2, "Pulpo", 16.00, 3),
		menuItem(3, "Croquetas", 7.50, 0),
	}
	return s
}

// decodeAction maps one opcode triple onto a stock-affecting action.  The
// mapping is total so every generated triple drives the engine somewhere.
func decodeAction(op, item, qty int) Action {
	itemID := item%3 + 1
	switch op % 5 {
	case 0:
		return AddToCart{Item: model.MenuItem{ID: itemID, Name: "x", Price: 1}}
	case 1:
		return AdjustStock{ItemID: itemID, Delta: qty%21 - 10}
	case 2:
		return ConfirmCheckout{}
	case 3:
		return ConfirmOrderTaking{Draft: OrderTakingDraft{
			TableID: 101 + item%8,
			Lines:   []QtyRequest{{ItemID: itemID, Qty: qty % 15}},
		}}
	default:
		return UpdateCartQty{ItemID: itemID, Delta: qty%7 - 3}
	}
}

func TestStockAndCartProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	now := time.Date(2026, 3, 14, 13, 0, 0, 0, time.UTC)

	properties.Property("stock stays non-negative under any action sequence", prop.ForAll(
		func(ops, items, qtys []int) bool {
			s := propState()
			for i := 0; i < len(ops) && i < len(items) && i < len(qtys); i++ {
				s = Transition(s, decodeAction(ops[i], items[i], qtys[i]), now)
				for _, it := range s.Inventory {
					if it.Stock < 0 {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 100)),
		gen.SliceOf(gen.IntRange(0, 100)),
		gen.SliceOf(gen.IntRange(0, 100)),
	))

	properties.Property("cart lines never exceed live stock", prop.ForAll(
		func(ops, items, qtys []int) bool {
			s := propState()
			for i := 0; i < len(ops) && i < len(items) && i < len(qtys); i++ {
				s = Transition(s, decodeAction(ops[i], items[i], qtys[i]), now)
				for _, line := range s.Cart {
					if line.Qty > stockFor(s.Inventory, line.ID) {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 100)),
		gen.SliceOf(gen.IntRange(0, 100)),
		gen.SliceOf(gen.IntRange(0, 100)),
	))

	properties.Property("notification feed never exceeds its cap", prop.ForAll(
		func(ops, items, qtys []int) bool {
			s := propState()
			for i := 0; i < len(ops) && i < len(items) && i < len(qtys); i++ {
				s = Transition(s, decodeAction(ops[i], items[i], qtys[i]), now)
				if len(s.Notifications) > notificationCap {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 100)),
		gen.SliceOf(gen.IntRange(0, 100)),
		gen.SliceOf(gen.IntRange(0, 100)),
	))

	properties.TestingRun(t)
}

// decodeReservationAction maps opcode triples onto reservation and table
// actions so the exclusivity property explores assignment races.
func decodeReservationAction(op, table, pick int) Action {
	tableID := 101 + table%8
	switch op % 6 {
	case 0:
		return AddReservation{Draft: ReservationDraft{
			Name: "Mesa Prop", Time: "21:00", Guests: pick%6 + 1, Table: tableID, Type: "estandar",
		}}
	case 1:
		return AssignReservationTable{ReservationID: reservationToken(pick), TableID: tableID}
	case 2:
		return StartReservationService{ReservationID: reservationToken(pick)}
	case 3:
		return FinishReservationService{ReservationID: reservationToken(pick)}
	case 4:
		return StageTableAction{TableID: tableID, Action: tableActionToken(pick)}
	default:
		return ConfirmTableAction{}
	}
}

func reservationToken(n int) string {
	tokens := []string{"rsv-001", "rsv-002", "rsv-003", "rsv-004", "rsv-005"}
	return tokens[n%len(tokens)]
}

func tableActionToken(n int) model.TableAction {
	actions := []model.TableAction{
		model.TableActionOcupar,
		model.TableActionLiberar,
		model.TableActionLimpiar,
		model.TableActionFinLimpiar,
	}
	return actions[n%len(actions)]
}

func TestReservationTableExclusivity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	now := time.Date(2026, 3, 14, 13, 0, 0, 0, time.UTC)

	properties.Property("no two live reservations hold the same table", prop.ForAll(
		func(ops, tables, picks []int) bool {
			s := propState()
			for i := 0; i < len(ops) && i < len(tables) && i < len(picks); i++ {
				s = Transition(s, decodeReservationAction(ops[i], tables[i], picks[i]), now)
				held := make(map[int]int)
				for _, r := range s.Reservations {
					if !r.Holding() || r.Table == model.TableUnassigned {
						continue
					}
					held[r.Table]++
					if held[r.Table] > 1 {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 100)),
		gen.SliceOf(gen.IntRange(0, 100)),
		gen.SliceOf(gen.IntRange(0, 100)),
	))

	properties.Property("no disponible or limpieza table keeps a live reservation", prop.ForAll(
		func(ops, tables, picks []int) bool {
			s := propState()
			for i := 0; i < len(ops) && i < len(tables) && i < len(picks); i++ {
				s = Transition(s, decodeReservationAction(ops[i], tables[i], picks[i]), now)
				for _, r := range s.Reservations {
					if !r.Holding() || r.Table == model.TableUnassigned {
						continue
					}
					ti := tableIndex(s.Tables, r.Table)
					if ti < 0 {
						return false
					}
					switch s.Tables[ti].Status {
					case model.TableDisponible, model.TableLimpieza:
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 100)),
		gen.SliceOf(gen.IntRange(0, 100)),
		gen.SliceOf(gen.IntRange(0, 100)),
	))

	properties.TestingRun(t)
}
