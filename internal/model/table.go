package model

// TableStatus is the lifecycle state of a dining table.  The values are the
// Spanish labels the floor staff see on screen; they double as wire values.
type TableStatus string

const (
	TableDisponible TableStatus = "disponible" // free, may be reserved or seated
	TableOcupada    TableStatus = "ocupada"    // party seated, session running
	TableReservada  TableStatus = "reservada"  // held by a reservation
	TableLimpieza   TableStatus = "limpieza"   // being cleaned after service
)

// TableSession describes the party currently seated at a table.
//
// Fields:
//
//	Name   – party or client name.
//	Time   – seating time as shown on the floor plan (HH:MM).
//	Guests – covers at the table.
//	Type   – session type (estandar, vip).
type TableSession struct {
	Name   string `json:"name"`
	Time   string `json:"time"`
	Guests int    `json:"guests"`
	Type   string `json:"type"`
}

// TableInfo is one table on the floor plan.
//
// A table is only `reservada` or `ocupada` when a live reservation or session
// references it; when `disponible` or `limpieza` no reservation may point at
// it.  The engine re-establishes this linkage on every reservation action.
//
// Fields:
//
//	ID             – table number as printed on the floor plan.
//	Status         – current lifecycle state.
//	Guests         – covers currently booked or seated (0 when free).
//	CurrentSession – seated party, nil unless status is ocupada.
//	CleaningSince  – HH:MM the cleaning started, empty unless status is limpieza.
type TableInfo struct {
	ID             int           `json:"id"`
	Status         TableStatus   `json:"status"`
	Guests         int           `json:"guests"`
	CurrentSession *TableSession `json:"current_session,omitempty"`
	CleaningSince  string        `json:"cleaning_since,omitempty"`
}
