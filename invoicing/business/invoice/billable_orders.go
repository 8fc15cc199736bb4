package invoice

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/orders"
)

// FindBillableOrders returns the payee's completed orders that are not yet
// attached to any invoice, ordered by order id. A payee with nothing to bill
// gets an empty list, not an error.
func (b *business) FindBillableOrders(ctx context.Context, payeeID int32) ([]model.Order, error) {
	if _, err := b.payeeRepo.GetPayee(ctx, payeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "payee not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get payee"}
	}

	rows, err := b.orderRepo.ListBillableOrdersByPayee(ctx, payeeID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list billable orders"}
	}

	result := make([]model.Order, 0, len(rows))
	for _, row := range rows {
		result = append(result, *convertDBOrderToModel(row))
	}
	return result, nil
}

// convertDBOrderToModel converts a database Order to a domain model Order.
func convertDBOrderToModel(dbOrder orders.Order) *model.Order {
	order := &model.Order{
		ID:         dbOrder.ID,
		PayeeID:    dbOrder.PayeeID,
		PriceCents: model.Amount(dbOrder.PriceCents),
		Status:     model.OrderStatus(dbOrder.Status),
		SourceURL:  dbOrder.SourceUrl,
		CreatedAt:  dbOrder.CreatedAt.Time,
	}

	if dbOrder.Title.Valid {
		order.Title = dbOrder.Title.String
	}

	if dbOrder.CompletedAt.Valid {
		order.CompletedAt = &dbOrder.CompletedAt.Time
	}

	return order
}
