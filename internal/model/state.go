package model

// Tab names a screen of the staff UI.  The engine only ever stores and routes
// these values; rendering belongs to the clients.
type Tab string

const (
	TabDashboard      Tab = "dashboard"
	TabPOS            Tab = "pos"
	TabInventario     Tab = "inventario"
	TabMesas          Tab = "mesas"
	TabReservas       Tab = "reservas"
	TabClientes       Tab = "clientes"
	TabCocina         Tab = "cocina"
	TabNotificaciones Tab = "notificaciones"
)

// TableAction is a staged operation on a table, applied on confirmation.
type TableAction string

const (
	TableActionOcupar     TableAction = "ocupar"
	TableActionLiberar    TableAction = "liberar"
	TableActionLimpiar    TableAction = "limpiar"
	TableActionFinLimpiar TableAction = "finalizar-limpieza"
)

// UIState carries the modal flags and selections the engine accepts as plain
// field updates.  Nothing here affects domain invariants.
type UIState struct {
	ShowCheckout         bool        `json:"show_checkout"`
	ShowReservationModal bool        `json:"show_reservation_modal"`
	EditingReservationID string      `json:"editing_reservation_id,omitempty"`
	SelectedOrderID      string      `json:"selected_order_id,omitempty"`
	SearchTerm           string      `json:"search_term,omitempty"`
	PendingTableID       int         `json:"pending_table_id,omitempty"`
	PendingTableAction   TableAction `json:"pending_table_action,omitempty"`
}

// ServiceContext is the table/session currently being served in the POS flow.
type ServiceContext struct {
	TableID     int    `json:"table_id"`
	SessionName string `json:"session_name"`
	Guests      int    `json:"guests"`
}

// OrderTakingContext tracks an in-progress comanda for an already seated
// table, distinct from the generic cart/checkout flow.
type OrderTakingContext struct {
	TableID int    `json:"table_id"`
	Waiter  string `json:"waiter"`
	Notes   string `json:"notes,omitempty"`
}

// DaySales is one point of the trailing weekly series.
type DaySales struct {
	Label string  `json:"label"` // weekday label (Lun..Dom)
	Total float64 `json:"total"`
}

// DashboardSnapshot is a derived view recomputed wholesale from clients and
// sales history after any action that touches either.  It is never edited in
// place.
type DashboardSnapshot struct {
	SalesToday    float64    `json:"sales_today"`
	SalesWeek     float64    `json:"sales_week"` // Monday-start week
	SalesMonth    float64    `json:"sales_month"`
	OrdersToday   int        `json:"orders_today"`
	WeeklySeries  []DaySales `json:"weekly_series"` // trailing 7 days, oldest first
	AverageTicket float64    `json:"average_ticket"`
	ClientCount   int        `json:"client_count"`
}

// Counters hold the monotonic sequences used to mint identifiers.  Keeping
// them inside the state keeps the transition function pure and replayable.
type Counters struct {
	Order        int `json:"order"`
	Notification int `json:"notification"`
	Reservation  int `json:"reservation"`
	Client       int `json:"client"`
	Sale         int `json:"sale"`
}

// RestaurantState is the aggregate root: the single unit of transition.
// Every action consumes the whole state and produces the whole next state;
// collections are copy-on-write and never mutated in place, so snapshots
// handed out earlier stay valid.
type RestaurantState struct {
	Inventory     []MenuItem          `json:"inventory"`
	Cart          []CartItem          `json:"cart"`
	Tables        []TableInfo         `json:"tables"`
	Reservations  []Reservation       `json:"reservations"`
	KitchenOrders []KitchenOrder      `json:"kitchen_orders"`
	Clients       []Client            `json:"clients"`
	SalesHistory  []SalesRecord       `json:"sales_history"`
	Notifications []Notification      `json:"notifications"`
	Dashboard     DashboardSnapshot   `json:"dashboard"`
	UI            UIState             `json:"ui"`
	ActiveTab     Tab                 `json:"active_tab"`
	CurrencyCode  string              `json:"currency_code"`
	Service       *ServiceContext     `json:"service,omitempty"`
	OrderTaking   *OrderTakingContext `json:"order_taking,omitempty"`
	Counters      Counters            `json:"counters"`
}
