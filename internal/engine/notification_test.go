package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-ops/internal/model"
)

func TestSeverityFor(t *testing.T) {
	assert.Equal(t, model.SeverityCritical, severityFor(0))
	assert.Equal(t, model.SeverityCritical, severityFor(-1))
	assert.Equal(t, model.SeverityLow, severityFor(1))
	assert.Equal(t, model.SeverityLow, severityFor(4))
	assert.Equal(t, model.SeverityNone, severityFor(5))
	assert.Equal(t, model.SeverityNone, severityFor(100))
}

func TestStockTransitionNotifications(t *testing.T) {
	t.Run("emits on worsening only", func(t *testing.T) {
		prev := []model.MenuItem{menuItem(1, "Paella", 10, 6)}
		next := []model.MenuItem{menuItem(1, "Paella", 10, 2)}
		var c model.Counters
		out := stockTransitionNotifications(&c, prev, next)
		require.Len(t, out, 1)
		assert.Equal(t, "Stock Bajo", out[0].Title)
		alert, ok := out[0].Payload.(model.StockAlert)
		require.True(t, ok)
		assert.Equal(t, model.SeverityLow, alert.Severity)
	})

	t.Run("exhaustion is critical", func(t *testing.T) {
		prev := []model.MenuItem{menuItem(1, "Paella", 10, 2)}
		next := []model.MenuItem{menuItem(1, "Paella", 10, 0)}
		var c model.Counters
		out := stockTransitionNotifications(&c, prev, next)
		require.Len(t, out, 1)
		assert.Equal(t, "Stock Agotado", out[0].Title)
	})

	t.Run("recovery emits nothing", func(t *testing.T) {
		prev := []model.MenuItem{menuItem(1, "Paella", 10, 2)}
		next := []model.MenuItem{menuItem(1, "Paella", 10, 8)}
		var c model.Counters
		assert.Empty(t, stockTransitionNotifications(&c, prev, next))
	})

	t.Run("unchanged severity emits nothing", func(t *testing.T) {
		prev := []model.MenuItem{menuItem(1, "Paella", 10, 3)}
		next := []model.MenuItem{menuItem(1, "Paella", 10, 2)}
		var c model.Counters
		assert.Empty(t, stockTransitionNotifications(&c, prev, next))
	})
}

func TestWithInventoryAwareNotifications(t *testing.T) {
	t.Run("prunes stale severities", func(t *testing.T) {
		// an alert recorded at low severity goes stale once stock recovers
		inventory := []model.MenuItem{menuItem(1, "Paella", 10, 8)}
		feed := []model.Notification{
			{ID: "ntf-1", Title: "Stock Bajo", Payload: model.StockAlert{ItemID: 1, Severity: model.SeverityLow}},
			{ID: "ntf-2", Title: "Pedido Confirmado", Payload: model.Event{Tone: model.NotificationSuccess}},
		}
		out := withInventoryAwareNotifications(feed, nil, inventory)
		require.Len(t, out, 1)
		assert.Equal(t, "ntf-2", out[0].ID)
	})

	t.Run("keeps alerts whose severity still matches", func(t *testing.T) {
		inventory := []model.MenuItem{menuItem(1, "Paella", 10, 2)}
		feed := []model.Notification{
			{ID: "ntf-1", Payload: model.StockAlert{ItemID: 1, Severity: model.SeverityLow}},
		}
		out := withInventoryAwareNotifications(feed, nil, inventory)
		assert.Len(t, out, 1)
	})

	t.Run("incoming entries go to the head and the feed is capped", func(t *testing.T) {
		var feed []model.Notification
		for i := 0; i < notificationCap; i++ {
			feed = append(feed, model.Notification{ID: fmt.Sprintf("ntf-%d", i+1), Payload: model.Event{Tone: model.NotificationInfo}})
		}
		incoming := []model.Notification{{ID: "ntf-new", Payload: model.Event{Tone: model.NotificationInfo}}}
		out := withInventoryAwareNotifications(feed, incoming, nil)
		require.Len(t, out, notificationCap)
		assert.Equal(t, "ntf-new", out[0].ID)
		assert.Equal(t, fmt.Sprintf("ntf-%d", notificationCap-1), out[len(out)-1].ID, "oldest entry falls off")
	})
}

func TestDefaultTabFor(t *testing.T) {
	assert.Equal(t, model.TabInventario, defaultTabFor(model.NotificationStock))
	assert.Equal(t, model.TabClientes, defaultTabFor(model.NotificationVIP))
	assert.Equal(t, model.TabCocina, defaultTabFor(model.NotificationSuccess))
	assert.Equal(t, model.TabDashboard, defaultTabFor(model.NotificationInfo))
}
