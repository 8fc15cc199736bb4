package invoicing

import (
	"context"
	"time"

	"encore.dev/rlog"

	"encore.app/invoicing/business/invoice"
	"encore.app/invoicing/model"
)

type ListInvoicesRequest struct {
	PayeeID     int       `query:"payee_id"`
	Status      string    `query:"status"`
	Search      string    `query:"search"`
	CreatedFrom time.Time `query:"created_from"`
	CreatedTo   time.Time `query:"created_to"`
	Limit       int       `query:"limit"`
	Offset      int       `query:"offset"`
}

type ListInvoicesResponse struct {
	Invoices   []model.InvoiceView `json:"invoices"`
	TotalCount int64               `json:"total_count"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}

// ListInvoices returns invoices matching the given filters, newest first.
// The status filter matches the effective status, so status=overdue finds
// pending invoices past their due date.
//
//encore:api public path=/v1/invoices method=GET
func (s *Service) ListInvoices(ctx context.Context, req *ListInvoicesRequest) (*ListInvoicesResponse, error) {
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Limit > 100 {
		req.Limit = 100
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	params := invoice.ListParams{
		Limit:  int32(req.Limit),
		Offset: int32(req.Offset),
	}
	if req.PayeeID > 0 {
		payeeID := int32(req.PayeeID)
		params.PayeeID = &payeeID
	}
	if req.Status != "" {
		status := model.InvoiceStatus(req.Status)
		params.Status = &status
	}
	if req.Search != "" {
		params.Search = &req.Search
	}
	if !req.CreatedFrom.IsZero() {
		params.CreatedFrom = &req.CreatedFrom
	}
	if !req.CreatedTo.IsZero() {
		params.CreatedTo = &req.CreatedTo
	}

	views, totalCount, err := s.business.ListInvoices(ctx, params)
	if err != nil {
		rlog.Error("failed to list invoices", "error", err)
		return nil, err
	}

	return &ListInvoicesResponse{
		Invoices:   views,
		TotalCount: totalCount,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}, nil
}
