package payees

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

type Payee struct {
	ID          int32
	DisplayName string
	Email       string
	Country     pgtype.Text
	CreatedAt   pgtype.Timestamptz
}

type Querier interface {
	GetPayee(ctx context.Context, id int32) (Payee, error)
}

var _ Querier = (*Queries)(nil)

const getPayee = `
SELECT id, display_name, email, country, created_at
FROM payees
WHERE id = $1
`

func (q *Queries) GetPayee(ctx context.Context, id int32) (Payee, error) {
	row := q.db.QueryRow(ctx, getPayee, id)
	var p Payee
	err := row.Scan(
		&p.ID,
		&p.DisplayName,
		&p.Email,
		&p.Country,
		&p.CreatedAt,
	)
	return p, err
}
