package invoices

import (
	"context"
)

type Querier interface {
	CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error)
	CreateInvoiceLineItem(ctx context.Context, arg CreateInvoiceLineItemParams) (InvoiceLineItem, error)
	GetInvoice(ctx context.Context, id int32) (Invoice, error)
	GetInvoiceForUpdate(ctx context.Context, id int32) (Invoice, error)
	UpdateInvoicePaid(ctx context.Context, arg UpdateInvoicePaidParams) (Invoice, error)
	DeleteInvoice(ctx context.Context, id int32) error
	ListInvoices(ctx context.Context, arg ListInvoicesParams) ([]ListInvoicesRow, error)
	CountInvoices(ctx context.Context, arg CountInvoicesParams) (int64, error)
	ListLineItemsByInvoice(ctx context.Context, invoiceID int32) ([]InvoiceLineItem, error)
	ListBilledOrderIDs(ctx context.Context, orderIDs []int32) ([]int32, error)
}

var _ Querier = (*Queries)(nil)
