// Package engine implements the restaurant's state-transition core: a single
// authoritative RestaurantState plus a closed set of actions applied by a
// pure Transition function.  Every handler is total; failures surface as
// unchanged state plus advisory notifications, never as errors.
package engine

import "github.com/iliyamo/restaurant-ops/internal/model"

// Action is the closed set of state transitions.  The unexported marker
// method seals the set to this package, so the reducer's type switch covers
// every kind an outside caller can construct.
type Action interface {
	isAction()
}

// ReservationDraft is the intake payload for creating a reservation, or for
// editing the one named by ui.EditingReservationID when the modal is in edit
// mode.
type ReservationDraft struct {
	Name   string `json:"name"`
	Time   string `json:"time"`
	Guests int    `json:"guests"`
	Table  int    `json:"table"` // requested table, TableUnassigned for none
	Type   string `json:"type"`  // estandar or vip
}

// ClientDraft is the client form payload.  An empty ID creates a new client;
// a set ID updates name, tier and preferences of an existing one.
type ClientDraft struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Tier        string `json:"tier"`
	Preferences string `json:"preferences,omitempty"`
}

// QtyRequest is one requested line of an order-taking payload.
type QtyRequest struct {
	ItemID int `json:"item_id"`
	Qty    int `json:"qty"`
}

// OrderTakingDraft is the confirmation payload of the order-taking flow.
type OrderTakingDraft struct {
	TableID int          `json:"table_id"`
	Waiter  string       `json:"waiter"`
	Notes   string       `json:"notes,omitempty"`
	Lines   []QtyRequest `json:"lines"`
}

// Cart and checkout.

// AddToCart stages one unit of a menu item in the POS cart.
type AddToCart struct{ Item model.MenuItem }

// UpdateCartQty moves a cart line's quantity by Delta, clamped to live stock;
// lines reaching zero are removed.
type UpdateCartQty struct {
	ItemID int
	Delta  int
}

// ClearCart empties the cart.
type ClearCart struct{}

// OpenCheckout and CloseCheckout toggle the checkout modal.
type OpenCheckout struct{}
type CloseCheckout struct{}

// ConfirmCheckout commits the cart: inventory deduction, kitchen order,
// sales record, dashboard refresh, notifications.  Waiter is advisory,
// stamped onto the kitchen order when known.
type ConfirmCheckout struct{ Waiter string }

// Inventory.

// AdjustStock moves an item's stock by Delta, floored at zero.
type AdjustStock struct {
	ItemID int
	Delta  int
}

// AddInventoryItem appends a new menu/inventory line; the engine assigns the
// identifier.
type AddInventoryItem struct{ Item model.MenuItem }

// Reservations.

// AddReservation creates a reservation, or edits the reservation named by
// ui.EditingReservationID when the modal carries one.
type AddReservation struct{ Draft ReservationDraft }

// AssignReservationTable binds a reservation to a table when the table is
// available; otherwise the previous binding is kept.
type AssignReservationTable struct {
	ReservationID string
	TableID       int
}

// StartReservationService seats the party: reservation goes en curso and the
// table becomes ocupada with a session.
type StartReservationService struct{ ReservationID string }

// FinishReservationService completes the visit: reservation goes completado
// and the table moves to limpieza.
type FinishReservationService struct{ ReservationID string }

// OpenReservationModal opens the reservation form, optionally in edit mode.
type OpenReservationModal struct{ EditingID string }

// CloseReservationModal closes the form and clears the editing id.
type CloseReservationModal struct{}

// Tables.

// StageTableAction stores a pending table operation in UI state.
type StageTableAction struct {
	TableID int
	Action  model.TableAction
}

// ConfirmTableAction applies the staged table operation.
type ConfirmTableAction struct{}

// Clients.

// SaveClient creates or updates a client from the form payload.
type SaveClient struct{ Draft ClientDraft }

// Order taking.

// StartOrderTaking opens an order-taking context for a seated table.
type StartOrderTaking struct {
	TableID int
	Waiter  string
}

// CancelOrderTaking clears the order-taking context without touching stock.
type CancelOrderTaking struct{}

// ConfirmOrderTaking runs the order preparer for the drafted lines.
type ConfirmOrderTaking struct{ Draft OrderTakingDraft }

// Kitchen.

// SetKitchenOrderStatus moves a comanda across the kitchen board.
type SetKitchenOrderStatus struct {
	OrderID string
	Status  model.KitchenOrderStatus
}

// CompleteKitchenOrder marks a comanda served and removes it from the board.
type CompleteKitchenOrder struct{ OrderID string }

// SelectKitchenOrder records the comanda highlighted on the kitchen screen.
type SelectKitchenOrder struct{ OrderID string }

// Notifications.

// MarkNotificationRead acknowledges a feed entry and navigates to its target
// tab; entries flagged dismiss-on-read are removed outright.
type MarkNotificationRead struct{ ID string }

// UI field updates.

// SetActiveTab switches the active screen.
type SetActiveTab struct{ Tab model.Tab }

// SetSearchTerm stores the list filter term.
type SetSearchTerm struct{ Term string }

// Bootstrap.

// Hydrate replaces the whole state with an externally loaded snapshot.
type Hydrate struct{ State model.RestaurantState }

func (AddToCart) isAction()                {}
func (UpdateCartQty) isAction()            {}
func (ClearCart) isAction()                {}
func (OpenCheckout) isAction()             {}
func (CloseCheckout) isAction()            {}
func (ConfirmCheckout) isAction()          {}
func (AdjustStock) isAction()              {}
func (AddInventoryItem) isAction()         {}
func (AddReservation) isAction()           {}
func (AssignReservationTable) isAction()   {}
func (StartReservationService) isAction()  {}
func (FinishReservationService) isAction() {}
func (OpenReservationModal) isAction()     {}
func (CloseReservationModal) isAction()    {}
func (StageTableAction) isAction()         {}
func (ConfirmTableAction) isAction()       {}
func (SaveClient) isAction()               {}
func (StartOrderTaking) isAction()         {}
func (CancelOrderTaking) isAction()        {}
func (ConfirmOrderTaking) isAction()       {}
func (SetKitchenOrderStatus) isAction()    {}
func (CompleteKitchenOrder) isAction()     {}
func (SelectKitchenOrder) isAction()       {}
func (MarkNotificationRead) isAction()     {}
func (SetActiveTab) isAction()             {}
func (SetSearchTerm) isAction()            {}
func (Hydrate) isAction()                  {}
