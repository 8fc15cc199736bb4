package model

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending            OrderStatus = "pending"
	OrderStatusInProgress         OrderStatus = "in_progress"
	OrderStatusCompleted          OrderStatus = "completed"
	OrderStatusGuestPostPublished OrderStatus = "guest_post_published"
	OrderStatusNicheEditPublished OrderStatus = "niche_edit_published"
	OrderStatusCancelled          OrderStatus = "cancelled"
)

// Billable reports whether an order in this status may be invoiced.
func (s OrderStatus) Billable() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusGuestPostPublished, OrderStatusNicheEditPublished:
		return true
	}
	return false
}

// Order is consumed from the order source; this service never mutates it.
type Order struct {
	ID          int32       `json:"id"`
	PayeeID     int32       `json:"payee_id"`
	PriceCents  Amount      `json:"price_cents"`
	Status      OrderStatus `json:"status"`
	SourceURL   string      `json:"source_url"`
	Title       string      `json:"title,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}
