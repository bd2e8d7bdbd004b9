package bootstrap

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-ops/internal/model"
)

// The demo seed must itself satisfy the invariants the engine maintains, or
// the first transitions after boot would start from an inconsistent house.
func TestDemoStateIsConsistent(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s := DemoState(now)

	require.NotEmpty(t, s.Inventory)
	require.Len(t, s.Tables, 8)

	t.Run("stock is never negative", func(t *testing.T) {
		for _, it := range s.Inventory {
			assert.GreaterOrEqual(t, it.Stock, 0, it.Name)
		}
	})

	t.Run("held tables match a live reservation", func(t *testing.T) {
		held := make(map[int]int)
		for _, r := range s.Reservations {
			if r.Table == model.TableUnassigned {
				continue
			}
			if r.Status == model.ReservationCompletado {
				continue
			}
			held[r.Table]++
		}
		for table, n := range held {
			assert.Equal(t, 1, n, "table %d held by more than one reservation", table)
		}
		for _, tb := range s.Tables {
			if tb.Status == model.TableReservada {
				assert.Contains(t, held, tb.ID, "reservada table %d has no reservation", tb.ID)
			}
		}
	})

	t.Run("occupied tables carry a session", func(t *testing.T) {
		for _, tb := range s.Tables {
			if tb.Status == model.TableOcupada {
				assert.NotNil(t, tb.CurrentSession, "table %d", tb.ID)
			} else {
				assert.Nil(t, tb.CurrentSession, "table %d", tb.ID)
			}
		}
	})

	t.Run("cleaning tables record when cleaning started", func(t *testing.T) {
		for _, tb := range s.Tables {
			if tb.Status == model.TableLimpieza {
				assert.NotEmpty(t, tb.CleaningSince)
			} else {
				assert.Empty(t, tb.CleaningSince)
			}
		}
	})

	t.Run("counters sit above every seeded id", func(t *testing.T) {
		for _, r := range s.Reservations {
			n, err := strconv.Atoi(strings.TrimPrefix(r.ID, "rsv-"))
			require.NoError(t, err)
			assert.LessOrEqual(t, n, s.Counters.Reservation)
		}
		for _, c := range s.Clients {
			n, err := strconv.Atoi(strings.TrimPrefix(c.ID, "cli-"))
			require.NoError(t, err)
			assert.LessOrEqual(t, n, s.Counters.Client)
		}
	})

	t.Run("vip reservations use vip statuses", func(t *testing.T) {
		for _, r := range s.Reservations {
			if !r.IsVIP() {
				continue
			}
			switch r.Status {
			case model.ReservationVIPPendiente, model.ReservationVIPReservado,
				model.ReservationEnCurso, model.ReservationCompletado:
			default:
				t.Errorf("vip reservation %s carries status %q", r.ID, r.Status)
			}
		}
	})
}

func TestMaxSeq(t *testing.T) {
	assert.Equal(t, 0, maxSeq(nil, "rsv-"))
	assert.Equal(t, 12, maxSeq([]string{"rsv-003", "rsv-012", "rsv-007"}, "rsv-"))
	assert.Equal(t, 2, maxSeq([]string{"rsv-002", "bogus"}, "rsv-"))
}
