package invoice

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"encore.app/invoicing/business/fee"
	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/domains"
	"encore.app/invoicing/repository/invoices"
	"encore.app/invoicing/repository/orders"
	"encore.app/invoicing/repository/payees"
)

// defaultDueInDays is the grace period applied when a draft leaves the due
// date unset.
const defaultDueInDays = 14

var validate = validator.New()

// ListParams are the caller-facing invoice listing filters. Status filters
// compare against the effective status, so "overdue" matches stored-pending
// invoices past their due date.
type ListParams struct {
	PayeeID     *int32
	Status      *model.InvoiceStatus
	Search      *string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Limit       int32
	Offset      int32
}

type Business interface {
	FindBillableOrders(ctx context.Context, payeeID int32) ([]model.Order, error)
	BuildDraft(ctx context.Context, payeeID int32, orderIDs []int32, method model.PaymentMethod, payeeEmail string, dueDate time.Time) (*model.InvoiceDraft, error)
	CreateInvoice(ctx context.Context, draft *model.InvoiceDraft) (*model.Invoice, error)
	GetInvoice(ctx context.Context, id int32) (*model.Invoice, error)
	ListInvoices(ctx context.Context, params ListParams) ([]model.InvoiceView, int64, error)
	MarkPaid(ctx context.Context, id int32) (*model.Invoice, error)
	DeleteInvoice(ctx context.Context, id int32) error
}

// business handles invoice aggregation and lifecycle logic.
type business struct {
	invoiceRepo  invoices.Querier
	orderRepo    orders.Querier
	payeeRepo    payees.Querier
	domainRepo   domains.Querier
	feeService   fee.Business
	stateMachine domain.StateMachine
}

// NewInvoiceBusiness creates the invoice business layer.
func NewInvoiceBusiness(
	invoiceRepo invoices.Querier,
	orderRepo orders.Querier,
	payeeRepo payees.Querier,
	domainRepo domains.Querier,
	feeService fee.Business,
	stateMachine domain.StateMachine,
) Business {
	return &business{
		invoiceRepo:  invoiceRepo,
		orderRepo:    orderRepo,
		payeeRepo:    payeeRepo,
		domainRepo:   domainRepo,
		feeService:   feeService,
		stateMachine: stateMachine,
	}
}
