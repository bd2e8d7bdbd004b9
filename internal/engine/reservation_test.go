package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-ops/internal/model"
)

func floorPlan(statuses map[int]model.TableStatus) []model.TableInfo {
	tables := make([]model.TableInfo, 0, 8)
	for id := 101; id <= 108; id++ {
		status := model.TableDisponible
		if s, ok := statuses[id]; ok {
			status = s
		}
		tables = append(tables, model.TableInfo{ID: id, Status: status})
	}
	return tables
}

func TestAppendReservationWithTableAssignment(t *testing.T) {
	t.Run("binds an available table immediately", func(t *testing.T) {
		tables := floorPlan(nil)
		var c model.Counters
		reservations, nextTables, created := appendReservationWithTableAssignment(nil, tables, &c,
			ReservationDraft{Name: "Familia Nova", Time: "20:45", Guests: 3, Table: 104, Type: "estandar"})

		require.Len(t, reservations, 1)
		assert.Equal(t, "rsv-001", created.ID)
		assert.Equal(t, 104, created.Table)
		assert.Equal(t, model.ReservationConfirmado, created.Status)

		ti := tableIndex(nextTables, 104)
		assert.Equal(t, model.TableReservada, nextTables[ti].Status)
		assert.Equal(t, 3, nextTables[ti].Guests)
		assert.Equal(t, model.TableDisponible, tables[ti].Status, "input tables must not be mutated")
	})

	t.Run("unavailable table leaves the reservation pending and unassigned", func(t *testing.T) {
		tables := floorPlan(map[int]model.TableStatus{104: model.TableOcupada})
		var c model.Counters
		_, nextTables, created := appendReservationWithTableAssignment(nil, tables, &c,
			ReservationDraft{Name: "Sr. Gil", Time: "21:00", Guests: 2, Table: 104, Type: "estandar"})

		assert.Equal(t, model.TableUnassigned, created.Table, "no substitute table is picked silently")
		assert.Equal(t, model.ReservationPendiente, created.Status)
		assert.Equal(t, model.TableOcupada, nextTables[tableIndex(nextTables, 104)].Status)
	})

	t.Run("vip draft gets the vip status labels", func(t *testing.T) {
		var c model.Counters
		_, _, created := appendReservationWithTableAssignment(nil, floorPlan(nil), &c,
			ReservationDraft{Name: "Dña. Salas", Time: "21:00", Guests: 6, Table: 103, Type: "vip"})
		assert.Equal(t, model.ReservationVIPReservado, created.Status)

		_, _, unbound := appendReservationWithTableAssignment(nil, floorPlan(nil), &c,
			ReservationDraft{Name: "Dña. Salas", Time: "21:30", Guests: 6, Type: "vip"})
		assert.Equal(t, model.ReservationVIPPendiente, unbound.Status)
	})
}

func TestAssignTableToReservation(t *testing.T) {
	base := func() ([]model.Reservation, []model.TableInfo) {
		tables := floorPlan(map[int]model.TableStatus{103: model.TableReservada})
		reservations := []model.Reservation{{
			ID: "rsv-001", Name: "Familia Nova", Guests: 3, Table: 103,
			Type: "estandar", Status: model.ReservationConfirmado,
		}}
		return reservations, tables
	}

	t.Run("moving to a free table releases the previous one", func(t *testing.T) {
		reservations, tables := base()
		nextRes, nextTables, ok := assignTableToReservation(reservations, tables, "rsv-001", 104)
		require.True(t, ok)
		assert.Equal(t, 104, nextRes[0].Table)

		prev := nextTables[tableIndex(nextTables, 103)]
		assert.Equal(t, model.TableDisponible, prev.Status)
		assert.Equal(t, 0, prev.Guests)

		nxt := nextTables[tableIndex(nextTables, 104)]
		assert.Equal(t, model.TableReservada, nxt.Status)
		assert.Equal(t, 3, nxt.Guests)
	})

	t.Run("same table is an idempotent success", func(t *testing.T) {
		reservations, tables := base()
		nextRes, nextTables, ok := assignTableToReservation(reservations, tables, "rsv-001", 103)
		assert.True(t, ok)
		assert.Equal(t, reservations[0], nextRes[0])
		assert.Equal(t, tables, nextTables)
	})

	t.Run("occupied target fails and keeps the previous binding", func(t *testing.T) {
		reservations, tables := base()
		tables[tableIndex(tables, 105)].Status = model.TableOcupada
		nextRes, nextTables, ok := assignTableToReservation(reservations, tables, "rsv-001", 105)
		assert.False(t, ok)
		assert.Equal(t, 103, nextRes[0].Table)
		assert.Equal(t, model.TableReservada, nextTables[tableIndex(nextTables, 103)].Status)
	})

	t.Run("pending reservation advances to confirmed on assignment", func(t *testing.T) {
		tables := floorPlan(nil)
		reservations := []model.Reservation{{
			ID: "rsv-002", Name: "Grupo Mistral", Guests: 4, Table: model.TableUnassigned,
			Type: "estandar", Status: model.ReservationPendiente,
		}}
		nextRes, _, ok := assignTableToReservation(reservations, tables, "rsv-002", 106)
		require.True(t, ok)
		assert.Equal(t, model.ReservationConfirmado, nextRes[0].Status)
	})
}
