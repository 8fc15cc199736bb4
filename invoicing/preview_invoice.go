package invoicing

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/model"
)

type PreviewInvoiceRequest struct {
	PayeeID       int32     `json:"payee_id" validate:"required,gt=0"`
	OrderIDs      []int32   `json:"order_ids" validate:"required,min=1,dive,gt=0"`
	PaymentMethod string    `json:"payment_method" validate:"required,oneof=wire paypal"`
	PayeeEmail    string    `json:"payee_email" validate:"required,email"`
	DueDate       time.Time `json:"due_date"`
}

type InvoiceDraftResponse struct {
	Draft model.InvoiceDraft `json:"draft"`
}

// PreviewInvoice assembles a draft invoice for the selected orders without
// persisting anything. The caller reviews the draft and hands it back
// unchanged to CreateInvoice to commit it.
//
//encore:api public path=/v1/invoices/preview method=POST
func (s *Service) PreviewInvoice(ctx context.Context, req *PreviewInvoiceRequest) (*InvoiceDraftResponse, error) {
	draft, err := s.business.BuildDraft(
		ctx,
		req.PayeeID,
		req.OrderIDs,
		model.PaymentMethod(req.PaymentMethod),
		req.PayeeEmail,
		req.DueDate,
	)
	if err != nil {
		rlog.Error("failed to build invoice draft", "error", err, "payee_id", req.PayeeID)
		return nil, err
	}

	return &InvoiceDraftResponse{
		Draft: *draft,
	}, nil
}

// Validate implements request validation using go-playground/validator
func (r *PreviewInvoiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
