package invoices

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createInvoice = `
INSERT INTO invoices (
    reference_id, payee_id, payee_email, base_amount_cents, payment_fee_cents,
    amount_cents, payment_method, status, notes, due_date
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, reference_id, payee_id, payee_email, base_amount_cents, payment_fee_cents,
    amount_cents, payment_method, status, notes, due_date, paid_at, created_at, updated_at
`

type CreateInvoiceParams struct {
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
}

func (q *Queries) CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, createInvoice,
		arg.ReferenceID,
		arg.PayeeID,
		arg.PayeeEmail,
		arg.BaseAmountCents,
		arg.PaymentFeeCents,
		arg.AmountCents,
		arg.PaymentMethod,
		arg.Status,
		arg.Notes,
		arg.DueDate,
	)
	var i Invoice
	err := row.Scan(
		&i.ID,
		&i.ReferenceID,
		&i.PayeeID,
		&i.PayeeEmail,
		&i.BaseAmountCents,
		&i.PaymentFeeCents,
		&i.AmountCents,
		&i.PaymentMethod,
		&i.Status,
		&i.Notes,
		&i.DueDate,
		&i.PaidAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createInvoiceLineItem = `
INSERT INTO invoice_line_items (invoice_id, order_id, description, amount_cents)
VALUES ($1, $2, $3, $4)
RETURNING id, invoice_id, order_id, description, amount_cents, created_at
`

type CreateInvoiceLineItemParams struct {
	InvoiceID   pgtype.Int4
	OrderID     int32
	Description pgtype.Text
	AmountCents int64
}

func (q *Queries) CreateInvoiceLineItem(ctx context.Context, arg CreateInvoiceLineItemParams) (InvoiceLineItem, error) {
	row := q.db.QueryRow(ctx, createInvoiceLineItem,
		arg.InvoiceID,
		arg.OrderID,
		arg.Description,
		arg.AmountCents,
	)
	var i InvoiceLineItem
	err := row.Scan(
		&i.ID,
		&i.InvoiceID,
		&i.OrderID,
		&i.Description,
		&i.AmountCents,
		&i.CreatedAt,
	)
	return i, err
}

const getInvoice = `
SELECT id, reference_id, payee_id, payee_email, base_amount_cents, payment_fee_cents,
    amount_cents, payment_method, status, notes, due_date, paid_at, created_at, updated_at
FROM invoices
WHERE id = $1
`

func (q *Queries) GetInvoice(ctx context.Context, id int32) (Invoice, error) {
	row := q.db.QueryRow(ctx, getInvoice, id)
	var i Invoice
	err := row.Scan(
		&i.ID,
		&i.ReferenceID,
		&i.PayeeID,
		&i.PayeeEmail,
		&i.BaseAmountCents,
		&i.PaymentFeeCents,
		&i.AmountCents,
		&i.PaymentMethod,
		&i.Status,
		&i.Notes,
		&i.DueDate,
		&i.PaidAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getInvoiceForUpdate = `
SELECT id, reference_id, payee_id, payee_email, base_amount_cents, payment_fee_cents,
    amount_cents, payment_method, status, notes, due_date, paid_at, created_at, updated_at
FROM invoices
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetInvoiceForUpdate(ctx context.Context, id int32) (Invoice, error) {
	row := q.db.QueryRow(ctx, getInvoiceForUpdate, id)
	var i Invoice
	err := row.Scan(
		&i.ID,
		&i.ReferenceID,
		&i.PayeeID,
		&i.PayeeEmail,
		&i.BaseAmountCents,
		&i.PaymentFeeCents,
		&i.AmountCents,
		&i.PaymentMethod,
		&i.Status,
		&i.Notes,
		&i.DueDate,
		&i.PaidAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateInvoicePaid = `
UPDATE invoices
SET status = $2, paid_at = $3, updated_at = now()
WHERE id = $1
RETURNING id, reference_id, payee_id, payee_email, base_amount_cents, payment_fee_cents,
    amount_cents, payment_method, status, notes, due_date, paid_at, created_at, updated_at
`

type UpdateInvoicePaidParams struct {
	ID     int32
	Status string
	PaidAt pgtype.Timestamptz
}

func (q *Queries) UpdateInvoicePaid(ctx context.Context, arg UpdateInvoicePaidParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, updateInvoicePaid, arg.ID, arg.Status, arg.PaidAt)
	var i Invoice
	err := row.Scan(
		&i.ID,
		&i.ReferenceID,
		&i.PayeeID,
		&i.PayeeEmail,
		&i.BaseAmountCents,
		&i.PaymentFeeCents,
		&i.AmountCents,
		&i.PaymentMethod,
		&i.Status,
		&i.Notes,
		&i.DueDate,
		&i.PaidAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteInvoice = `
DELETE FROM invoices
WHERE id = $1
`

func (q *Queries) DeleteInvoice(ctx context.Context, id int32) error {
	_, err := q.db.Exec(ctx, deleteInvoice, id)
	return err
}

const listInvoices = `
SELECT i.id, i.reference_id, i.payee_id, i.payee_email, i.base_amount_cents, i.payment_fee_cents,
    i.amount_cents, i.payment_method, i.status, i.notes, i.due_date, i.paid_at, i.created_at, i.updated_at,
    p.display_name AS payee_name
FROM invoices i
JOIN payees p ON p.id = i.payee_id
WHERE ($1::int4 IS NULL OR i.payee_id = $1)
  AND ($2::text IS NULL
       OR ($2 = 'paid' AND i.status = 'paid')
       OR ($2 = 'pending' AND i.status = 'pending' AND i.due_date >= $3::timestamptz)
       OR ($2 = 'overdue' AND i.status = 'pending' AND i.due_date < $3::timestamptz))
  AND ($4::text IS NULL
       OR CAST(i.id AS TEXT) ILIKE '%' || $4 || '%'
       OR CAST(i.reference_id AS TEXT) ILIKE '%' || $4 || '%'
       OR i.payee_email ILIKE '%' || $4 || '%'
       OR p.display_name ILIKE '%' || $4 || '%'
       OR p.email ILIKE '%' || $4 || '%')
  AND ($5::timestamptz IS NULL OR i.created_at >= $5)
  AND ($6::timestamptz IS NULL OR i.created_at <= $6)
ORDER BY i.created_at DESC, i.id DESC
LIMIT $7 OFFSET $8
`

type ListInvoicesParams struct {
	PayeeID     pgtype.Int4
	Status      pgtype.Text
	Now         pgtype.Timestamptz
	Search      pgtype.Text
	CreatedFrom pgtype.Timestamptz
	CreatedTo   pgtype.Timestamptz
	Limit       int32
	Offset      int32
}

type ListInvoicesRow struct {
	Invoice
	PayeeName string
}

func (q *Queries) ListInvoices(ctx context.Context, arg ListInvoicesParams) ([]ListInvoicesRow, error) {
	rows, err := q.db.Query(ctx, listInvoices,
		arg.PayeeID,
		arg.Status,
		arg.Now,
		arg.Search,
		arg.CreatedFrom,
		arg.CreatedTo,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListInvoicesRow
	for rows.Next() {
		var i ListInvoicesRow
		if err := rows.Scan(
			&i.ID,
			&i.ReferenceID,
			&i.PayeeID,
			&i.PayeeEmail,
			&i.BaseAmountCents,
			&i.PaymentFeeCents,
			&i.AmountCents,
			&i.PaymentMethod,
			&i.Status,
			&i.Notes,
			&i.DueDate,
			&i.PaidAt,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.PayeeName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countInvoices = `
SELECT count(*)
FROM invoices i
JOIN payees p ON p.id = i.payee_id
WHERE ($1::int4 IS NULL OR i.payee_id = $1)
  AND ($2::text IS NULL
       OR ($2 = 'paid' AND i.status = 'paid')
       OR ($2 = 'pending' AND i.status = 'pending' AND i.due_date >= $3::timestamptz)
       OR ($2 = 'overdue' AND i.status = 'pending' AND i.due_date < $3::timestamptz))
  AND ($4::text IS NULL
       OR CAST(i.id AS TEXT) ILIKE '%' || $4 || '%'
       OR CAST(i.reference_id AS TEXT) ILIKE '%' || $4 || '%'
       OR i.payee_email ILIKE '%' || $4 || '%'
       OR p.display_name ILIKE '%' || $4 || '%'
       OR p.email ILIKE '%' || $4 || '%')
  AND ($5::timestamptz IS NULL OR i.created_at >= $5)
  AND ($6::timestamptz IS NULL OR i.created_at <= $6)
`

type CountInvoicesParams struct {
	PayeeID     pgtype.Int4
	Status      pgtype.Text
	Now         pgtype.Timestamptz
	Search      pgtype.Text
	CreatedFrom pgtype.Timestamptz
	CreatedTo   pgtype.Timestamptz
}

func (q *Queries) CountInvoices(ctx context.Context, arg CountInvoicesParams) (int64, error) {
	row := q.db.QueryRow(ctx, countInvoices,
		arg.PayeeID,
		arg.Status,
		arg.Now,
		arg.Search,
		arg.CreatedFrom,
		arg.CreatedTo,
	)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listLineItemsByInvoice = `
SELECT id, invoice_id, order_id, description, amount_cents, created_at
FROM invoice_line_items
WHERE invoice_id = $1
ORDER BY id
`

func (q *Queries) ListLineItemsByInvoice(ctx context.Context, invoiceID int32) ([]InvoiceLineItem, error) {
	rows, err := q.db.Query(ctx, listLineItemsByInvoice, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []InvoiceLineItem
	for rows.Next() {
		var i InvoiceLineItem
		if err := rows.Scan(
			&i.ID,
			&i.InvoiceID,
			&i.OrderID,
			&i.Description,
			&i.AmountCents,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listBilledOrderIDs = `
SELECT order_id
FROM invoice_line_items
WHERE order_id = ANY($1::int4[])
ORDER BY order_id
`

func (q *Queries) ListBilledOrderIDs(ctx context.Context, orderIDs []int32) ([]int32, error) {
	rows, err := q.db.Query(ctx, listBilledOrderIDs, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []int32
	for rows.Next() {
		var orderID int32
		if err := rows.Scan(&orderID); err != nil {
			return nil, err
		}
		items = append(items, orderID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
