package domains

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

type Querier interface {
	GetDomainNameByHost(ctx context.Context, host string) (string, error)
}

var _ Querier = (*Queries)(nil)

const getDomainNameByHost = `
SELECT name
FROM domains
WHERE host = lower($1)
`

// GetDomainNameByHost resolves a catalog domain name for a hostname.
// Returns pgx.ErrNoRows when the host is not in the catalog.
func (q *Queries) GetDomainNameByHost(ctx context.Context, host string) (string, error) {
	row := q.db.QueryRow(ctx, getDomainNameByHost, host)
	var name string
	err := row.Scan(&name)
	return name, err
}
