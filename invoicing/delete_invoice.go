package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

// DeleteInvoice removes an invoice regardless of status. The referenced
// orders become billable again once the line items cascade away.
//
//encore:api public path=/v1/invoices/:id method=DELETE
func (s *Service) DeleteInvoice(ctx context.Context, id int) error {
	if id <= 0 {
		return &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	if err := s.business.DeleteInvoice(ctx, int32(id)); err != nil {
		rlog.Error("failed to delete invoice", "error", err, "id", id)
		return err
	}

	return nil
}
