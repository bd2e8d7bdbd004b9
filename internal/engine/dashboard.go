package engine

import (
	"time"

	"github.com/iliyamo/restaurant-ops/internal/model"
)

// weekday labels as shown on the dashboard, indexed by time.Weekday.
var dayLabels = [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// startOfWeek truncates t to the preceding Monday midnight.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// buildSnapshot recomputes the dashboard wholesale from clients and sales
// history relative to ref.  There is no caching or dirty tracking; the
// reducer calls this after every action that touches either input, and
// correctness rests only on the determinism of the inputs.
func buildSnapshot(clients []model.Client, sales []model.SalesRecord, ref time.Time) model.DashboardSnapshot {
	day := startOfDay(ref)
	week := startOfWeek(ref)
	month := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	seriesStart := day.AddDate(0, 0, -6)

	snap := model.DashboardSnapshot{
		WeeklySeries: make([]model.DaySales, 7),
		ClientCount:  len(clients),
	}
	for i := 0; i < 7; i++ {
		d := seriesStart.AddDate(0, 0, i)
		snap.WeeklySeries[i] = model.DaySales{Label: dayLabels[d.Weekday()]}
	}

	for _, s := range sales {
		at := s.CreatedAt
		if !at.Before(day) {
			snap.SalesToday += s.Total
			snap.OrdersToday++
		}
		if !at.Before(week) {
			snap.SalesWeek += s.Total
		}
		if !at.Before(month) {
			snap.SalesMonth += s.Total
		}
		if !at.Before(seriesStart) && at.Before(day.AddDate(0, 0, 1)) {
			idx := int(startOfDay(at).Sub(seriesStart).Hours() / 24)
			if idx >= 0 && idx < 7 {
				snap.WeeklySeries[idx].Total += s.Total
			}
		}
	}

	if len(clients) > 0 {
		var spend float64
		for _, c := range clients {
			spend += c.Spend
		}
		snap.AverageTicket = spend / float64(len(clients))
	}
	return snap
}
