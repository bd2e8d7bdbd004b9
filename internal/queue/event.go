// Package queue defines message payloads exchanged over the message broker.
package queue

// OrderConfirmedEvent is published after a checkout or order-taking commit.
// It carries enough denormalized detail for downstream consumers (kitchen
// display, analytics) to act without asking the server for state.
type OrderConfirmedEvent struct {
	OrderID     string      `json:"order_id"`
	TableID     int         `json:"table_id,omitempty"`
	Waiter      string      `json:"waiter,omitempty"`
	Items       []OrderLine `json:"items"`
	Total       float64     `json:"total"`
	Currency    string      `json:"currency"`
	ConfirmedAt string      `json:"confirmed_at"`
}

// OrderLine mirrors a kitchen order line on the wire.
type OrderLine struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// ReservationCreatedEvent is published when the host books a party.
type ReservationCreatedEvent struct {
	ReservationID string `json:"reservation_id"`
	Name          string `json:"name"`
	Time          string `json:"time"`
	Guests        int    `json:"guests"`
	TableID       int    `json:"table_id,omitempty"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}
