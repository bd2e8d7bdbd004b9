package model

import "time"

// VisitRecord is one past visit in a client's history.
type VisitRecord struct {
	Date  time.Time `json:"date"`
	Total float64   `json:"total"`
}

// Client is a known guest of the house.
//
// Tier and preferences are edited by staff through the client form; visits,
// spend and history accrue automatically when a confirmed order's reservation
// or session name matches the client's name.
//
// Fields:
//
//	ID          – token of the form cli-<n>, assigned from a state counter.
//	Name        – match key for spend accrual.
//	Tier        – nuevo, regular or vip.
//	Visits      – lifetime visit count.
//	Spend       – cumulative spend, USD-equivalent.
//	Preferences – free-form notes (allergies, favourite table...).
//	History     – past visits, newest first.
type Client struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Tier        string        `json:"tier"`
	Visits      int           `json:"visits"`
	Spend       float64       `json:"spend"`
	Preferences string        `json:"preferences,omitempty"`
	History     []VisitRecord `json:"history,omitempty"`
}

// SalesRecord is one committed sale kept for dashboard aggregation.
//
// Fields:
//
//	ID        – token of the form sale-<n>.
//	Total     – charged amount including the service fee.
//	Items     – dish lines as committed after reconciliation.
//	TableID   – originating table, 0 for counter sales.
//	CreatedAt – commit timestamp; drives the dashboard time buckets.
type SalesRecord struct {
	ID        string      `json:"id"`
	Total     float64     `json:"total"`
	Items     []OrderLine `json:"items"`
	TableID   int         `json:"table_id,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
