package invoice

import (
	"context"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/repository/invoices"
)

// DeleteInvoice removes an invoice from any status. This is an
// administrative override: the cascade on line items frees the referenced
// orders for future billing.
func (b *business) DeleteInvoice(ctx context.Context, id int32) error {
	return b.stateMachine.GetInvoiceWithLock(ctx, id, func(tx domain.Tx, currentInvoice invoices.Invoice) error {
		return tx.DeleteInvoice(ctx, id)
	})
}
