package model

import "encoding/json"

// NotificationKind labels the feed entry for styling and default routing.
type NotificationKind string

const (
	NotificationStock   NotificationKind = "stock"
	NotificationSuccess NotificationKind = "success"
	NotificationInfo    NotificationKind = "info"
	NotificationVIP     NotificationKind = "vip"
)

// StockSeverity is the categorical urgency derived from a stock count.
type StockSeverity string

const (
	SeverityNone     StockSeverity = "none"
	SeverityLow      StockSeverity = "low"      // 0 < stock < 5
	SeverityCritical StockSeverity = "critical" // stock <= 0
)

// NotificationPayload is the closed set of per-kind notification payloads.
// Each kind carries only the fields that kind actually uses, instead of one
// record with a bag of optional meta fields.
type NotificationPayload interface {
	Kind() NotificationKind
}

// StockAlert is the payload of a stock-severity notification.  The recorded
// severity is compared against the item's live severity on every
// inventory-affecting transition; entries whose severity no longer matches
// are pruned from the feed.
type StockAlert struct {
	ItemID   int           `json:"item_id"`
	Severity StockSeverity `json:"severity"`
}

func (StockAlert) Kind() NotificationKind { return NotificationStock }

// Event is the payload of a transient event notification (order confirmed,
// reservation created, table freed, vip arrival).
//
// Fields:
//
//	Tone          – success, info or vip; decides styling and the default tab.
//	NavigateTo    – tab opened when the entry is read; empty falls back to the
//	                tone's default tab.
//	DismissOnRead – drop the entry outright instead of flagging it read.
type Event struct {
	Tone          NotificationKind `json:"tone"`
	NavigateTo    Tab              `json:"navigate_to,omitempty"`
	DismissOnRead bool             `json:"dismiss_on_read,omitempty"`
}

func (e Event) Kind() NotificationKind { return e.Tone }

// Notification is one entry in the feed.
//
// Fields:
//
//	ID      – token of the form ntf-<n>, assigned from a state counter.
//	Title   – short headline.
//	Message – body text.
//	Read    – acknowledged flag; reading also navigates (see engine).
//	Payload – kind-specific payload variant.
type Notification struct {
	ID      string              `json:"id"`
	Title   string              `json:"title"`
	Message string              `json:"message"`
	Read    bool                `json:"read"`
	Payload NotificationPayload `json:"payload"`
}

// Kind is a convenience passthrough to the payload's kind.
func (n Notification) Kind() NotificationKind {
	if n.Payload == nil {
		return NotificationInfo
	}
	return n.Payload.Kind()
}

// notificationJSON is the wire shape of a Notification.  The payload variant
// is flattened next to a "type" discriminator so hydrate payloads and cached
// responses round-trip without losing the variant.
type notificationJSON struct {
	ID       string           `json:"id"`
	Type     NotificationKind `json:"type"`
	Title    string           `json:"title"`
	Message  string           `json:"message"`
	Read     bool             `json:"read"`
	ItemID   int              `json:"item_id,omitempty"`
	Severity StockSeverity    `json:"severity,omitempty"`
	Navigate Tab              `json:"navigate_to,omitempty"`
	Dismiss  bool             `json:"dismiss_on_read,omitempty"`
}

// MarshalJSON flattens the payload variant into the wire shape.
func (n Notification) MarshalJSON() ([]byte, error) {
	out := notificationJSON{
		ID:      n.ID,
		Type:    n.Kind(),
		Title:   n.Title,
		Message: n.Message,
		Read:    n.Read,
	}
	switch p := n.Payload.(type) {
	case StockAlert:
		out.ItemID = p.ItemID
		out.Severity = p.Severity
	case Event:
		out.Navigate = p.NavigateTo
		out.Dismiss = p.DismissOnRead
	}
	return json.Marshal(out)
}

// UnmarshalJSON rebuilds the payload variant from the "type" discriminator.
func (n *Notification) UnmarshalJSON(data []byte) error {
	var in notificationJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	n.ID = in.ID
	n.Title = in.Title
	n.Message = in.Message
	n.Read = in.Read
	switch in.Type {
	case NotificationStock:
		n.Payload = StockAlert{ItemID: in.ItemID, Severity: in.Severity}
	case NotificationSuccess, NotificationInfo, NotificationVIP:
		n.Payload = Event{Tone: in.Type, NavigateTo: in.Navigate, DismissOnRead: in.Dismiss}
	default:
		n.Payload = Event{Tone: NotificationInfo, NavigateTo: in.Navigate, DismissOnRead: in.Dismiss}
	}
	return nil
}
