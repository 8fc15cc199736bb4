package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/model"
)

type CreateInvoiceRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Draft *model.InvoiceDraft `json:"draft" validate:"required"`
}

type InvoiceResponse struct {
	Invoice model.Invoice `json:"invoice"`
}

// CreateInvoice commits a previewed draft as a pending invoice. Order
// eligibility is re-verified transactionally at commit time, so a draft that
// went stale since preview is rejected rather than double-billing an order.
//
//encore:api public path=/v1/invoices method=POST tag:idempotency
func (s *Service) CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (*InvoiceResponse, error) {
	result, err := s.business.CreateInvoice(ctx, req.Draft)
	if err != nil {
		rlog.Error("failed to create invoice", "error", err, "payee_id", req.Draft.PayeeID)
		return nil, err
	}

	return &InvoiceResponse{
		Invoice: *result,
	}, nil
}

// Validate implements request validation using go-playground/validator
func (r *CreateInvoiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
