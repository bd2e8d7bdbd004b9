package engine

import (
	"fmt"

	"github.com/iliyamo/restaurant-ops/internal/model"
)

// notificationCap bounds the feed; the oldest entries fall off first.
const notificationCap = 80

// severityFor maps a stock count to its categorical urgency.
func severityFor(stock int) model.StockSeverity {
	switch {
	case stock <= 0:
		return model.SeverityCritical
	case stock < 5:
		return model.SeverityLow
	default:
		return model.SeverityNone
	}
}

// newNotification mints a feed entry, advancing the notification counter.
func newNotification(c *model.Counters, title, message string, payload model.NotificationPayload) model.Notification {
	c.Notification++
	return model.Notification{
		ID:      fmt.Sprintf("ntf-%d", c.Notification),
		Title:   title,
		Message: message,
		Payload: payload,
	}
}

// stockTransitionNotifications diffs two inventories and emits one entry per
// item whose severity changed for the worse.  Improvements to none emit
// nothing; the stale alert is handled by pruning instead.
func stockTransitionNotifications(c *model.Counters, prev, next []model.MenuItem) []model.Notification {
	before := make(map[int]model.StockSeverity, len(prev))
	for _, it := range prev {
		before[it.ID] = severityFor(it.Stock)
	}
	var out []model.Notification
	for _, it := range next {
		sev := severityFor(it.Stock)
		if sev == before[it.ID] || sev == model.SeverityNone {
			continue
		}
		var title, msg string
		if sev == model.SeverityCritical {
			title = "Stock Agotado"
			msg = fmt.Sprintf("%s se ha agotado", it.Name)
		} else {
			title = "Stock Bajo"
			msg = fmt.Sprintf("Quedan %d %s de %s", it.Stock, it.Unit, it.Name)
		}
		out = append(out, newNotification(c, title, msg, model.StockAlert{ItemID: it.ID, Severity: sev}))
	}
	return out
}

// withInventoryAwareNotifications prepends incoming entries to the feed,
// caps the result, and prunes every stock entry whose recorded severity no
// longer matches the item's live severity.  An alert for an item back at
// severity none disappears entirely.
func withInventoryAwareNotifications(current, incoming []model.Notification, inventory []model.MenuItem) []model.Notification {
	merged := make([]model.Notification, 0, len(incoming)+len(current))
	merged = append(merged, incoming...)
	merged = append(merged, current...)
	if len(merged) > notificationCap {
		merged = merged[:notificationCap]
	}
	out := make([]model.Notification, 0, len(merged))
	for _, n := range merged {
		if alert, ok := n.Payload.(model.StockAlert); ok {
			if severityFor(stockFor(inventory, alert.ItemID)) != alert.Severity {
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

// defaultTabFor is the navigation fallback for feed entries without an
// explicit target.
func defaultTabFor(kind model.NotificationKind) model.Tab {
	switch kind {
	case model.NotificationStock:
		return model.TabInventario
	case model.NotificationVIP:
		return model.TabClientes
	case model.NotificationSuccess:
		return model.TabCocina
	default:
		return model.TabDashboard
	}
}
