package model

// KitchenOrderStatus is the comanda's position on the kitchen board.
type KitchenOrderStatus string

const (
	KitchenPending KitchenOrderStatus = "pending"
	KitchenCooking KitchenOrderStatus = "cooking"
	KitchenReady   KitchenOrderStatus = "ready"
)

// OrderLine is one dish and quantity inside a kitchen order or sales record.
type OrderLine struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// KitchenOrder is a comanda sent to the kitchen.  Orders are created by
// checkout or by the order-taking flow and removed from the board once
// served; confirming more items for a table with an open comanda replaces
// that comanda's lines rather than opening a second one.
//
// Fields:
//
//	ID      – sequential token of the form ORD-<n>.
//	Items   – ordered dish lines.
//	Status  – board column (pending, cooking, ready).
//	Waiter  – who sent it; stamped from the advisory session identity.
//	Notes   – optional free-form notes for the kitchen.
//	TableID – originating table, or 0 for a counter/takeaway sale.
type KitchenOrder struct {
	ID      string             `json:"id"`
	Items   []OrderLine        `json:"items"`
	Status  KitchenOrderStatus `json:"status"`
	Waiter  string             `json:"waiter"`
	Notes   string             `json:"notes,omitempty"`
	TableID int                `json:"table_id,omitempty"`
}
