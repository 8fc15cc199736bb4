package invoice

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
)

// ListInvoices returns filtered invoice views plus the total match count.
// Every returned view carries the effective status derived at call time, and
// status filtering compares against that derivation, never the stored value.
func (b *business) ListInvoices(ctx context.Context, params ListParams) ([]model.InvoiceView, int64, error) {
	if params.Status != nil {
		switch *params.Status {
		case model.InvoiceStatusPending, model.InvoiceStatusPaid, model.InvoiceStatusOverdue:
		default:
			return nil, 0, &errs.Error{Code: errs.InvalidArgument, Message: "unrecognized status filter"}
		}
	}

	now := time.Now()
	payeeID := pgtype.Int4{}
	if params.PayeeID != nil {
		payeeID = pgtype.Int4{Int32: *params.PayeeID, Valid: true}
	}
	status := pgtype.Text{}
	if params.Status != nil {
		status = pgtype.Text{String: string(*params.Status), Valid: true}
	}
	search := pgtype.Text{}
	if params.Search != nil && *params.Search != "" {
		search = pgtype.Text{String: *params.Search, Valid: true}
	}
	createdFrom := pgtype.Timestamptz{}
	if params.CreatedFrom != nil {
		createdFrom = pgtype.Timestamptz{Time: *params.CreatedFrom, Valid: true}
	}
	createdTo := pgtype.Timestamptz{}
	if params.CreatedTo != nil {
		createdTo = pgtype.Timestamptz{Time: *params.CreatedTo, Valid: true}
	}

	rows, err := b.invoiceRepo.ListInvoices(ctx, invoices.ListInvoicesParams{
		PayeeID:     payeeID,
		Status:      status,
		Now:         pgtype.Timestamptz{Time: now, Valid: true},
		Search:      search,
		CreatedFrom: createdFrom,
		CreatedTo:   createdTo,
		Limit:       params.Limit,
		Offset:      params.Offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list invoices"}
	}

	totalCount, err := b.invoiceRepo.CountInvoices(ctx, invoices.CountInvoicesParams{
		PayeeID:     payeeID,
		Status:      status,
		Now:         pgtype.Timestamptz{Time: now, Valid: true},
		Search:      search,
		CreatedFrom: createdFrom,
		CreatedTo:   createdTo,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count invoices"}
	}

	views := make([]model.InvoiceView, 0, len(rows))
	for _, row := range rows {
		inv := convertDBInvoiceToModel(row.Invoice)
		views = append(views, model.InvoiceView{
			Invoice:         *inv,
			PayeeName:       row.PayeeName,
			EffectiveStatus: domain.EffectiveStatus(inv.Status, inv.DueDate, now),
		})
	}

	return views, totalCount, nil
}
