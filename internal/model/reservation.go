package model

// ReservationStatus tracks a reservation from intake to a finished visit.
// VIP reservations use their own prefixed labels so the host screen can style
// them apart; the engine treats vip labels and their plain counterparts as the
// same phase.
type ReservationStatus string

const (
	ReservationPendiente    ReservationStatus = "pendiente"     // no table bound yet
	ReservationConfirmado   ReservationStatus = "confirmado"    // table bound
	ReservationVIPPendiente ReservationStatus = "vip pendiente" // vip, no table bound
	ReservationVIPReservado ReservationStatus = "vip reservado" // vip, table bound
	ReservationEnCurso      ReservationStatus = "en curso"      // party seated
	ReservationCompletado   ReservationStatus = "completado"    // terminal
)

// TableUnassigned is the sentinel for a reservation without a bound table.
const TableUnassigned = 0

// Reservation is a booking taken by the host.  Reservations are never
// physically deleted; a finished visit parks in `completado`.
//
// Fields:
//
//	ID     – token of the form rsv-<n>, assigned from a state counter.
//	Name   – party name; also the key used to accrue client history.
//	Time   – requested time (HH:MM).
//	Guests – party size.
//	Table  – bound table id, or TableUnassigned.
//	Type   – estandar or vip; drives the vip status labels.
//	Status – current phase.
type Reservation struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Time   string            `json:"time"`
	Guests int               `json:"guests"`
	Table  int               `json:"table"`
	Type   string            `json:"type"`
	Status ReservationStatus `json:"status"`
}

// IsVIP reports whether the reservation carries the vip flag.
func (r Reservation) IsVIP() bool { return r.Type == "vip" }

// Pending reports whether the reservation is still in a pending-like phase,
// plain or vip.
func (r Reservation) Pending() bool {
	return r.Status == ReservationPendiente || r.Status == ReservationVIPPendiente
}

// Holding reports whether the reservation currently claims a table on the
// floor plan (confirmed or seated, plain or vip).
func (r Reservation) Holding() bool {
	switch r.Status {
	case ReservationConfirmado, ReservationVIPReservado, ReservationEnCurso:
		return true
	}
	return false
}
