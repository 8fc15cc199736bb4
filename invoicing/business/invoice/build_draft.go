package invoice

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/orders"
)

// BuildDraft aggregates the selected orders into an immutable invoice draft:
// per-order line items in selection order, the pre-fee base amount, and the
// payment-method-adjusted total. Nothing is persisted; CreateInvoice commits
// a draft after caller review.
func (b *business) BuildDraft(ctx context.Context, payeeID int32, orderIDs []int32, method model.PaymentMethod, payeeEmail string, dueDate time.Time) (*model.InvoiceDraft, error) {
	if !method.Valid() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "unrecognized payment method"}
	}
	if err := validate.Var(payeeEmail, "required,email"); err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid payee email"}
	}
	if len(orderIDs) == 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "no billable orders"}
	}

	if _, err := b.payeeRepo.GetPayee(ctx, payeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "payee not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get payee"}
	}

	selection, err := b.loadSelection(ctx, payeeID, orderIDs)
	if err != nil {
		return nil, err
	}

	billed, err := b.invoiceRepo.ListBilledOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to verify order eligibility"}
	}
	if len(billed) > 0 {
		return nil, &errs.Error{Code: errs.AlreadyExists, Message: fmt.Sprintf("order %d is already billed", billed[0])}
	}

	var baseAmount model.Amount
	lineItems := make([]model.DraftLineItem, 0, len(selection))
	descriptions := make([]string, 0, len(selection))
	for n, row := range selection {
		price := model.Amount(row.PriceCents)
		description := b.lineItemDescription(ctx, n+1, row, price)
		lineItems = append(lineItems, model.DraftLineItem{
			OrderID:     row.ID,
			Description: description,
			AmountCents: price,
		})
		descriptions = append(descriptions, description)
		baseAmount = baseAmount.Add(price)
	}

	feeResult, err := b.feeService.ComputeFee(ctx, baseAmount, method)
	if err != nil {
		return nil, err
	}

	if dueDate.IsZero() {
		dueDate = time.Now().AddDate(0, 0, defaultDueInDays)
	}

	return &model.InvoiceDraft{
		PayeeID:         payeeID,
		PayeeEmail:      payeeEmail,
		PaymentMethod:   method,
		BaseAmountCents: baseAmount,
		PaymentFeeCents: feeResult.FeeCents,
		AmountCents:     feeResult.TotalCents,
		Notes:           strings.Join(descriptions, "\n"),
		DueDate:         dueDate,
		LineItems:       lineItems,
	}, nil
}

// loadSelection fetches the selected orders and returns them in selection
// order, rejecting unknown, foreign, duplicate, and non-billable orders.
func (b *business) loadSelection(ctx context.Context, payeeID int32, orderIDs []int32) ([]orders.Order, error) {
	rows, err := b.orderRepo.GetOrdersByIDs(ctx, orderIDs)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get orders"}
	}

	byID := make(map[int32]orders.Order, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	selection := make([]orders.Order, 0, len(orderIDs))
	seen := make(map[int32]bool, len(orderIDs))
	for _, id := range orderIDs {
		if seen[id] {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("order %d selected twice", id)}
		}
		seen[id] = true

		row, ok := byID[id]
		if !ok {
			return nil, &errs.Error{Code: errs.NotFound, Message: fmt.Sprintf("order %d not found", id)}
		}
		if row.PayeeID != payeeID {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("order %d does not belong to payee", id)}
		}
		if !model.OrderStatus(row.Status).Billable() {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("order %d is not billable", id)}
		}
		selection = append(selection, row)
	}
	return selection, nil
}

// lineItemDescription renders one ordinal-numbered description line.
func (b *business) lineItemDescription(ctx context.Context, ordinal int, row orders.Order, price model.Amount) string {
	site := b.resolveSiteName(ctx, row.SourceUrl)
	if row.Title.Valid && row.Title.String != "" {
		site += " - " + row.Title.String
	}
	return fmt.Sprintf("%d. Link Building Services - #%d - %s - %s", ordinal, row.ID, site, price)
}

// resolveSiteName resolves a human-readable site reference for an order's
// source URL: the catalog name when the host is known, the parsed hostname
// otherwise, and the raw URL when no hostname can be parsed at all.
func (b *business) resolveSiteName(ctx context.Context, sourceURL string) string {
	parsed, err := url.Parse(sourceURL)
	if err != nil || parsed.Hostname() == "" {
		return sourceURL
	}

	host := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
	name, err := b.domainRepo.GetDomainNameByHost(ctx, host)
	if err != nil {
		// Catalog miss is expected for off-catalog placements.
		return host
	}
	return name
}
