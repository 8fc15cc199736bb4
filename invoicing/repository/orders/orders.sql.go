package orders

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type Order struct {
	ID          int32
	PayeeID     int32
	PriceCents  int64
	Status      string
	SourceUrl   string
	Title       pgtype.Text
	CompletedAt pgtype.Timestamptz
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type Querier interface {
	GetOrder(ctx context.Context, id int32) (Order, error)
	GetOrdersByIDs(ctx context.Context, ids []int32) ([]Order, error)
	ListOrdersByPayee(ctx context.Context, payeeID int32) ([]Order, error)
	ListBillableOrdersByPayee(ctx context.Context, payeeID int32) ([]Order, error)
}

var _ Querier = (*Queries)(nil)

const getOrder = `
SELECT id, payee_id, price_cents, status, source_url, title, completed_at, created_at, updated_at
FROM orders
WHERE id = $1
`

func (q *Queries) GetOrder(ctx context.Context, id int32) (Order, error) {
	row := q.db.QueryRow(ctx, getOrder, id)
	var o Order
	err := row.Scan(
		&o.ID,
		&o.PayeeID,
		&o.PriceCents,
		&o.Status,
		&o.SourceUrl,
		&o.Title,
		&o.CompletedAt,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

const getOrdersByIDs = `
SELECT id, payee_id, price_cents, status, source_url, title, completed_at, created_at, updated_at
FROM orders
WHERE id = ANY($1::int4[])
ORDER BY id
`

func (q *Queries) GetOrdersByIDs(ctx context.Context, ids []int32) ([]Order, error) {
	rows, err := q.db.Query(ctx, getOrdersByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

const listOrdersByPayee = `
SELECT id, payee_id, price_cents, status, source_url, title, completed_at, created_at, updated_at
FROM orders
WHERE payee_id = $1
ORDER BY id
`

func (q *Queries) ListOrdersByPayee(ctx context.Context, payeeID int32) ([]Order, error) {
	rows, err := q.db.Query(ctx, listOrdersByPayee, payeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

const listBillableOrdersByPayee = `
SELECT o.id, o.payee_id, o.price_cents, o.status, o.source_url, o.title, o.completed_at, o.created_at, o.updated_at
FROM orders o
WHERE o.payee_id = $1
  AND o.status IN ('completed', 'guest_post_published', 'niche_edit_published')
  AND NOT EXISTS (
      SELECT 1 FROM invoice_line_items li WHERE li.order_id = o.id
  )
ORDER BY o.id
`

func (q *Queries) ListBillableOrdersByPayee(ctx context.Context, payeeID int32) ([]Order, error) {
	rows, err := q.db.Query(ctx, listBillableOrdersByPayee, payeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanOrders(rows rowScanner) ([]Order, error) {
	var items []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID,
			&o.PayeeID,
			&o.PriceCents,
			&o.Status,
			&o.SourceUrl,
			&o.Title,
			&o.CompletedAt,
			&o.CreatedAt,
			&o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
