package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
)

// CreateInvoice commits a previewed draft as a pending invoice. Eligibility
// is re-verified inside the same transaction that writes the invoice and its
// line-item references, so two concurrent creations can never bill the same
// order twice; the losing request gets AlreadyExists and should re-run the
// preview against fresh eligibility data.
func (b *business) CreateInvoice(ctx context.Context, draft *model.InvoiceDraft) (*model.Invoice, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	feeResult, err := b.feeService.ComputeFee(ctx, draft.BaseAmountCents, draft.PaymentMethod)
	if err != nil {
		return nil, err
	}
	if feeResult.FeeCents != draft.PaymentFeeCents || feeResult.TotalCents != draft.AmountCents {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "draft amounts do not match payment method fee"}
	}

	dueDate := draft.DueDate
	if dueDate.IsZero() {
		dueDate = time.Now().AddDate(0, 0, defaultDueInDays)
	}

	var created *model.Invoice
	err = b.stateMachine.RunInTx(ctx, func(tx domain.Tx) error {
		txInvoiceRepo := tx.Invoices
		txOrderRepo := tx.Orders
		orderIDs := draft.OrderIDs()

		billed, err := txInvoiceRepo.ListBilledOrderIDs(ctx, orderIDs)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to verify order eligibility"}
		}
		if len(billed) > 0 {
			return &errs.Error{Code: errs.AlreadyExists, Message: fmt.Sprintf("order %d is already billed", billed[0])}
		}

		rows, err := txOrderRepo.GetOrdersByIDs(ctx, orderIDs)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to get orders"}
		}
		if len(rows) != len(orderIDs) {
			return &errs.Error{Code: errs.NotFound, Message: "order not found"}
		}
		for _, row := range rows {
			if row.PayeeID != draft.PayeeID {
				return &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("order %d does not belong to payee", row.ID)}
			}
			if !model.OrderStatus(row.Status).Billable() {
				return &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("order %d is not billable", row.ID)}
			}
		}

		dbInvoice, err := txInvoiceRepo.CreateInvoice(ctx, invoices.CreateInvoiceParams{
			ReferenceID:     uuid.NewString(),
			PayeeID:         draft.PayeeID,
			PayeeEmail:      draft.PayeeEmail,
			BaseAmountCents: int64(draft.BaseAmountCents),
			PaymentFeeCents: int64(draft.PaymentFeeCents),
			AmountCents:     int64(draft.AmountCents),
			PaymentMethod:   string(draft.PaymentMethod),
			Status:          string(model.InvoiceStatusPending),
			Notes:           pgtype.Text{String: draft.Notes, Valid: draft.Notes != ""},
			DueDate:         pgtype.Timestamptz{Time: dueDate, Valid: true},
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to create invoice"}
		}

		lineItems := make([]model.LineItem, 0, len(draft.LineItems))
		for _, item := range draft.LineItems {
			dbLineItem, err := txInvoiceRepo.CreateInvoiceLineItem(ctx, invoices.CreateInvoiceLineItemParams{
				InvoiceID:   pgtype.Int4{Int32: dbInvoice.ID, Valid: true},
				OrderID:     item.OrderID,
				Description: pgtype.Text{String: item.Description, Valid: true},
				AmountCents: int64(item.AmountCents),
			})
			if err != nil {
				var e *pgconn.PgError
				if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
					return &errs.Error{Code: errs.AlreadyExists, Message: fmt.Sprintf("order %d is already billed", item.OrderID)}
				}
				return &errs.Error{Code: errs.Internal, Message: "failed to create line item"}
			}
			lineItems = append(lineItems, *convertDBLineItemToModel(dbLineItem))
		}

		created = convertDBInvoiceToModel(dbInvoice)
		created.LineItems = lineItems
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func validateDraft(draft *model.InvoiceDraft) error {
	if draft == nil || len(draft.LineItems) == 0 {
		return &errs.Error{Code: errs.InvalidArgument, Message: "no billable orders"}
	}
	if !draft.PaymentMethod.Valid() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "unrecognized payment method"}
	}
	if err := validate.Var(draft.PayeeEmail, "required,email"); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "invalid payee email"}
	}
	if draft.AmountCents != draft.BaseAmountCents.Add(draft.PaymentFeeCents) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "amount does not equal base amount plus fee"}
	}

	var itemTotal model.Amount
	for _, item := range draft.LineItems {
		itemTotal = itemTotal.Add(item.AmountCents)
	}
	if itemTotal != draft.BaseAmountCents {
		return &errs.Error{Code: errs.InvalidArgument, Message: "base amount does not equal line item total"}
	}
	return nil
}

// convertDBInvoiceToModel converts a database Invoice to a domain model Invoice.
func convertDBInvoiceToModel(dbInvoice invoices.Invoice) *model.Invoice {
	invoice := &model.Invoice{
		ID:              dbInvoice.ID,
		ReferenceID:     dbInvoice.ReferenceID,
		PayeeID:         dbInvoice.PayeeID,
		PayeeEmail:      dbInvoice.PayeeEmail,
		BaseAmountCents: model.Amount(dbInvoice.BaseAmountCents),
		PaymentFeeCents: model.Amount(dbInvoice.PaymentFeeCents),
		AmountCents:     model.Amount(dbInvoice.AmountCents),
		PaymentMethod:   model.PaymentMethod(dbInvoice.PaymentMethod),
		Status:          model.InvoiceStatus(dbInvoice.Status),
		DueDate:         dbInvoice.DueDate.Time,
		CreatedAt:       dbInvoice.CreatedAt.Time,
		UpdatedAt:       dbInvoice.UpdatedAt.Time,
	}

	if dbInvoice.Notes.Valid {
		invoice.Notes = dbInvoice.Notes.String
	}

	if dbInvoice.PaidAt.Valid {
		invoice.PaidAt = &dbInvoice.PaidAt.Time
	}

	return invoice
}

// convertDBLineItemToModel converts a database line item to its domain model.
func convertDBLineItemToModel(dbLineItem invoices.InvoiceLineItem) *model.LineItem {
	lineItem := &model.LineItem{
		ID:          dbLineItem.ID,
		InvoiceID:   dbLineItem.InvoiceID.Int32,
		OrderID:     dbLineItem.OrderID,
		AmountCents: model.Amount(dbLineItem.AmountCents),
		CreatedAt:   dbLineItem.CreatedAt.Time,
	}

	if dbLineItem.Description.Valid {
		lineItem.Description = dbLineItem.Description.String
	}

	return lineItem
}
