package invoices

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Invoice struct {
	ID              int32
	ReferenceID     string
	PayeeID         int32
	PayeeEmail      string
	BaseAmountCents int64
	PaymentFeeCents int64
	AmountCents     int64
	PaymentMethod   string
	Status          string
	Notes           pgtype.Text
	DueDate         pgtype.Timestamptz
	PaidAt          pgtype.Timestamptz
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

type InvoiceLineItem struct {
	ID          int32
	InvoiceID   pgtype.Int4
	OrderID     int32
	Description pgtype.Text
	AmountCents int64
	CreatedAt   pgtype.Timestamptz
}
