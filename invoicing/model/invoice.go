package model

import (
	"time"
)

type InvoiceStatus string

const (
	// Stored statuses.
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"

	// InvoiceStatusOverdue is derived at read time from the due date and
	// is never persisted.
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

type PaymentMethod string

const (
	PaymentMethodWire   PaymentMethod = "wire"
	PaymentMethodPayPal PaymentMethod = "paypal"
)

// Valid reports whether the method is one of the recognized values.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodWire || m == PaymentMethodPayPal
}

type Invoice struct {
	ID              int32         `json:"id"`
	ReferenceID     string        `json:"reference_id"`
	PayeeID         int32         `json:"payee_id"`
	PayeeEmail      string        `json:"payee_email"`
	BaseAmountCents Amount        `json:"base_amount_cents"`
	PaymentFeeCents Amount        `json:"payment_fee_cents"`
	AmountCents     Amount        `json:"amount_cents"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	Status          InvoiceStatus `json:"status"`
	Notes           string        `json:"notes"`
	DueDate         time.Time     `json:"due_date"`
	PaidAt          *time.Time    `json:"paid_at,omitempty"`
	LineItems       []LineItem    `json:"line_items,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type LineItem struct {
	ID          int32     `json:"id"`
	InvoiceID   int32     `json:"invoice_id"`
	OrderID     int32     `json:"order_id"`
	Description string    `json:"description"`
	AmountCents Amount    `json:"amount_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

// InvoiceDraft is a fully computed, unpersisted invoice proposal. It is
// returned by the preview step for caller review and handed back verbatim
// to the create step. It carries no identity until committed.
type InvoiceDraft struct {
	PayeeID         int32           `json:"payee_id"`
	PayeeEmail      string          `json:"payee_email"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	BaseAmountCents Amount          `json:"base_amount_cents"`
	PaymentFeeCents Amount          `json:"payment_fee_cents"`
	AmountCents     Amount          `json:"amount_cents"`
	Notes           string          `json:"notes"`
	DueDate         time.Time       `json:"due_date"`
	LineItems       []DraftLineItem `json:"line_items"`
}

type DraftLineItem struct {
	OrderID     int32  `json:"order_id"`
	Description string `json:"description"`
	AmountCents Amount `json:"amount_cents"`
}

// OrderIDs returns the referenced order ids in selection order.
func (d *InvoiceDraft) OrderIDs() []int32 {
	ids := make([]int32, len(d.LineItems))
	for i, li := range d.LineItems {
		ids[i] = li.OrderID
	}
	return ids
}

// InvoiceView is the listing representation: the stored invoice plus the
// payee display name and the time-derived effective status.
type InvoiceView struct {
	Invoice
	PayeeName       string        `json:"payee_name"`
	EffectiveStatus InvoiceStatus `json:"effective_status"`
}
