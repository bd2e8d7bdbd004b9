package engine

import (
	"fmt"

	"github.com/iliyamo/restaurant-ops/internal/model"
)

// tableIndex locates a table on the floor plan, -1 when unknown.
func tableIndex(tables []model.TableInfo, id int) int {
	for i, t := range tables {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// reservationIndex locates a reservation, -1 when unknown.
func reservationIndex(reservations []model.Reservation, id string) int {
	for i, r := range reservations {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// confirmedStatus is the confirmed-like phase for a reservation's tier.
func confirmedStatus(r model.Reservation) model.ReservationStatus {
	if r.IsVIP() {
		return model.ReservationVIPReservado
	}
	return model.ReservationConfirmado
}

// pendingStatus is the pending-like phase for a reservation's tier.
func pendingStatus(r model.Reservation) model.ReservationStatus {
	if r.IsVIP() {
		return model.ReservationVIPPendiente
	}
	return model.ReservationPendiente
}

// appendReservationWithTableAssignment creates a reservation from the draft.
// When the requested table is exactly disponible the reservation binds to it
// and the table flips to reservada; any other case leaves the reservation
// unassigned and pending.  No other table is ever substituted silently.
func appendReservationWithTableAssignment(reservations []model.Reservation, tables []model.TableInfo, c *model.Counters, draft ReservationDraft) ([]model.Reservation, []model.TableInfo, model.Reservation) {
	c.Reservation++
	r := model.Reservation{
		ID:     fmt.Sprintf("rsv-%03d", c.Reservation),
		Name:   draft.Name,
		Time:   draft.Time,
		Guests: draft.Guests,
		Table:  model.TableUnassigned,
		Type:   draft.Type,
	}
	r.Status = pendingStatus(r)

	nextTables := tables
	if i := tableIndex(tables, draft.Table); i >= 0 && tables[i].Status == model.TableDisponible {
		r.Table = draft.Table
		r.Status = confirmedStatus(r)
		nextTables = make([]model.TableInfo, len(tables))
		copy(nextTables, tables)
		nextTables[i].Status = model.TableReservada
		nextTables[i].Guests = draft.Guests
	}

	next := make([]model.Reservation, len(reservations), len(reservations)+1)
	copy(next, reservations)
	return append(next, r), nextTables, r
}

// assignTableToReservation rebinds a reservation to another table.  The call
// succeeds only when the reservation and target table exist and the target is
// disponible, or is already the reservation's own table (idempotent repeat).
// On success the previous table, if it was merely reservada, reverts to
// disponible with guests reset, and the reservation advances out of its
// pending phase.  Anything else returns the inputs untouched with ok=false.
func assignTableToReservation(reservations []model.Reservation, tables []model.TableInfo, reservationID string, nextTableID int) ([]model.Reservation, []model.TableInfo, bool) {
	ri := reservationIndex(reservations, reservationID)
	if ri < 0 {
		return reservations, tables, false
	}
	ti := tableIndex(tables, nextTableID)
	if ti < 0 {
		return reservations, tables, false
	}
	r := reservations[ri]
	if r.Table == nextTableID {
		return reservations, tables, true
	}
	if tables[ti].Status != model.TableDisponible {
		return reservations, tables, false
	}

	nextTables := make([]model.TableInfo, len(tables))
	copy(nextTables, tables)
	if pi := tableIndex(nextTables, r.Table); pi >= 0 && nextTables[pi].Status == model.TableReservada {
		nextTables[pi].Status = model.TableDisponible
		nextTables[pi].Guests = 0
	}
	nextTables[ti].Status = model.TableReservada
	nextTables[ti].Guests = r.Guests

	nextReservations := make([]model.Reservation, len(reservations))
	copy(nextReservations, reservations)
	nextReservations[ri].Table = nextTableID
	if r.Pending() {
		nextReservations[ri].Status = confirmedStatus(r)
	}
	return nextReservations, nextTables, true
}
