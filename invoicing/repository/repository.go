package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/invoicing/repository/domains"
	"encore.app/invoicing/repository/invoices"
	"encore.app/invoicing/repository/orders"
	"encore.app/invoicing/repository/payees"
)

// Repository combines all domain-specific queriers.
type Repository struct {
	Invoices invoices.Querier
	Orders   orders.Querier
	Payees   payees.Querier
	Domains  domains.Querier
}

// NewRepository creates a new Repository with all domain queriers.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Invoices: invoices.New(db),
		Orders:   orders.New(db),
		Payees:   payees.New(db),
		Domains:  domains.New(db),
	}
}
