package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-ops/internal/model"
)

func TestBuildSnapshot(t *testing.T) {
	// Saturday 2026-03-14; the week bucket starts Monday 2026-03-09.
	ref := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	sales := []model.SalesRecord{
		{ID: "sale-4", Total: 50, CreatedAt: ref},                    // today
		{ID: "sale-3", Total: 30, CreatedAt: ref.AddDate(0, 0, -2)},  // this week (Thursday)
		{ID: "sale-2", Total: 20, CreatedAt: ref.AddDate(0, 0, -6)},  // last week, inside the month and trailing series
		{ID: "sale-1", Total: 999, CreatedAt: ref.AddDate(0, -2, 0)}, // out of every bucket
	}
	clients := []model.Client{
		{ID: "cli-1", Spend: 100},
		{ID: "cli-2", Spend: 50},
	}

	snap := buildSnapshot(clients, sales, ref)

	assert.InDelta(t, 50, snap.SalesToday, 1e-9)
	assert.Equal(t, 1, snap.OrdersToday)
	assert.InDelta(t, 80, snap.SalesWeek, 1e-9, "Monday-start week excludes last Sunday")
	assert.InDelta(t, 100, snap.SalesMonth, 1e-9)
	assert.Equal(t, 2, snap.ClientCount)
	assert.InDelta(t, 75, snap.AverageTicket, 1e-9)

	require.Len(t, snap.WeeklySeries, 7)
	assert.Equal(t, "Dom", snap.WeeklySeries[0].Label, "series starts six days back")
	assert.Equal(t, "Sáb", snap.WeeklySeries[6].Label)
	assert.InDelta(t, 20, snap.WeeklySeries[0].Total, 1e-9)
	assert.InDelta(t, 30, snap.WeeklySeries[4].Total, 1e-9)
	assert.InDelta(t, 50, snap.WeeklySeries[6].Total, 1e-9)
}

func TestBuildSnapshotEmptyInputs(t *testing.T) {
	snap := buildSnapshot(nil, nil, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	assert.Zero(t, snap.SalesToday)
	assert.Zero(t, snap.AverageTicket, "no clients means no average, not a division by zero")
	assert.Len(t, snap.WeeklySeries, 7)
}

func TestStartOfWeekIsMonday(t *testing.T) {
	// Sunday belongs to the week that started six days earlier.
	sunday := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), startOfWeek(sunday))

	monday := time.Date(2026, 3, 9, 0, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), startOfWeek(monday))
}
