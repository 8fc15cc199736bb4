package invoice

import (
	"context"
	"time"

	"encore.dev/beta/errs"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
)

// MarkPaid transitions a pending invoice to paid and records the payment
// time. The current status is observed under a row lock on every call:
// marking an already-paid invoice fails rather than succeeding silently.
func (b *business) MarkPaid(ctx context.Context, id int32) (*model.Invoice, error) {
	err := b.stateMachine.GetInvoiceWithLock(ctx, id, func(tx domain.Tx, currentInvoice invoices.Invoice) error {
		switch currentInvoice.Status {
		case string(model.InvoiceStatusPending):
			return tx.TransitionToPaid(ctx, id, time.Now())

		case string(model.InvoiceStatusPaid):
			return &errs.Error{Code: errs.FailedPrecondition, Message: "invoice is already paid"}

		default:
			return &errs.Error{Code: errs.FailedPrecondition, Message: "invoice is not in a payable state"}
		}
	})
	if err != nil {
		return nil, err
	}

	return b.GetInvoice(ctx, id)
}
