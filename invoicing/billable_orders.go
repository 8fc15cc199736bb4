package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/model"
)

type BillableOrdersResponse struct {
	Orders []model.Order `json:"orders"`
}

// ListBillableOrders returns the orders of a payee that can go on a new
// invoice: billable status, not yet referenced by any invoice line item.
//
//encore:api public path=/v1/payees/:payeeID/billable-orders method=GET
func (s *Service) ListBillableOrders(ctx context.Context, payeeID int) (*BillableOrdersResponse, error) {
	if payeeID <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid payee ID"}
	}

	orders, err := s.business.FindBillableOrders(ctx, int32(payeeID))
	if err != nil {
		rlog.Error("failed to list billable orders", "error", err, "payee_id", payeeID)
		return nil, err
	}

	return &BillableOrdersResponse{
		Orders: orders,
	}, nil
}
