package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

// MarkInvoicePaid records payment of a pending invoice. Paying an invoice
// that is not pending fails; overdue invoices are stored as pending and
// remain payable.
//
//encore:api public path=/v1/invoices/:id/pay method=POST
func (s *Service) MarkInvoicePaid(ctx context.Context, id int) (*InvoiceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	result, err := s.business.MarkPaid(ctx, int32(id))
	if err != nil {
		rlog.Error("failed to mark invoice paid", "error", err, "id", id)
		return nil, err
	}

	return &InvoiceResponse{
		Invoice: *result,
	}, nil
}
