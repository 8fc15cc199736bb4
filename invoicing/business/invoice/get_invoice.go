package invoice

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
)

// GetInvoice retrieves an invoice by id together with its line items.
func (b *business) GetInvoice(ctx context.Context, id int32) (*model.Invoice, error) {
	dbInvoice, err := b.invoiceRepo.GetInvoice(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "invoice not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get invoice"}
	}

	invoice := convertDBInvoiceToModel(dbInvoice)

	dbLineItems, err := b.invoiceRepo.ListLineItemsByInvoice(ctx, id)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get line items"}
	}

	invoice.LineItems = make([]model.LineItem, 0, len(dbLineItems))
	for _, dbLineItem := range dbLineItems {
		invoice.LineItems = append(invoice.LineItems, *convertDBLineItemToModel(dbLineItem))
	}

	return invoice, nil
}
