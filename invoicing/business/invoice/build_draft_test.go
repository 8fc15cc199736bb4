package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/invoicing/business/fee"
	"encore.app/invoicing/mocks/repository/domain_repo"
	"encore.app/invoicing/mocks/repository/invoice_repo"
	"encore.app/invoicing/mocks/repository/order_repo"
	"encore.app/invoicing/mocks/repository/payee_repo"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/orders"
	"encore.app/invoicing/repository/payees"
)

func newDraftTestBusiness(ctrl *gomock.Controller) (*business, *payee_repo.MockQuerier, *order_repo.MockQuerier, *invoice_repo.MockQuerier, *domain_repo.MockQuerier) {
	mockPayeeRepo := payee_repo.NewMockQuerier(ctrl)
	mockOrderRepo := order_repo.NewMockQuerier(ctrl)
	mockInvoiceRepo := invoice_repo.NewMockQuerier(ctrl)
	mockDomainRepo := domain_repo.NewMockQuerier(ctrl)

	b := &business{
		invoiceRepo: mockInvoiceRepo,
		orderRepo:   mockOrderRepo,
		payeeRepo:   mockPayeeRepo,
		domainRepo:  mockDomainRepo,
		feeService:  fee.NewFeeBusiness(),
	}
	return b, mockPayeeRepo, mockOrderRepo, mockInvoiceRepo, mockDomainRepo
}

var draftTestOrders = []orders.Order{
	{ID: 11, PayeeID: 7, PriceCents: 15000, Status: "completed", SourceUrl: "https://www.example.com/guest-post"},
	{ID: 12, PayeeID: 7, PriceCents: 7500, Status: "guest_post_published", SourceUrl: "https://blog-example.com/niche-edit"},
}

func TestBuildDraftWire(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockPayeeRepo, mockOrderRepo, mockInvoiceRepo, mockDomainRepo := newDraftTestBusiness(ctrl)

	mockPayeeRepo.EXPECT().GetPayee(gomock.Any(), int32(7)).Return(payees.Payee{ID: 7}, nil)
	mockOrderRepo.EXPECT().GetOrdersByIDs(gomock.Any(), []int32{11, 12}).Return(draftTestOrders, nil)
	mockInvoiceRepo.EXPECT().ListBilledOrderIDs(gomock.Any(), []int32{11, 12}).Return(nil, nil)
	mockDomainRepo.EXPECT().GetDomainNameByHost(gomock.Any(), "example.com").Return("example.com", nil)
	mockDomainRepo.EXPECT().GetDomainNameByHost(gomock.Any(), "blog-example.com").Return("blog-example.com", nil)

	dueDate := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	draft, err := b.BuildDraft(context.Background(), 7, []int32{11, 12}, model.PaymentMethodWire, "billing@acme.test", dueDate)

	assert.NoError(t, err)
	assert.NotNil(t, draft)
	assert.Equal(t, model.Amount(22500), draft.BaseAmountCents)
	assert.Equal(t, model.Amount(0), draft.PaymentFeeCents)
	assert.Equal(t, model.Amount(22500), draft.AmountCents)
	assert.Equal(t, dueDate, draft.DueDate)
	assert.Len(t, draft.LineItems, 2)
	assert.Equal(t, int32(11), draft.LineItems[0].OrderID)
	assert.Equal(t, int32(12), draft.LineItems[1].OrderID)
	assert.Equal(t, "1. Link Building Services - #11 - example.com - $150.00", draft.LineItems[0].Description)
	assert.Equal(t, "2. Link Building Services - #12 - blog-example.com - $75.00", draft.LineItems[1].Description)
	assert.Equal(t, draft.LineItems[0].Description+"\n"+draft.LineItems[1].Description, draft.Notes)
}

func TestBuildDraftPayPalFee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockPayeeRepo, mockOrderRepo, mockInvoiceRepo, mockDomainRepo := newDraftTestBusiness(ctrl)

	mockPayeeRepo.EXPECT().GetPayee(gomock.Any(), int32(7)).Return(payees.Payee{ID: 7}, nil)
	mockOrderRepo.EXPECT().GetOrdersByIDs(gomock.Any(), []int32{11, 12}).Return(draftTestOrders, nil)
	mockInvoiceRepo.EXPECT().ListBilledOrderIDs(gomock.Any(), []int32{11, 12}).Return(nil, nil)
	mockDomainRepo.EXPECT().GetDomainNameByHost(gomock.Any(), gomock.Any()).Return("", pgx.ErrNoRows).Times(2)

	draft, err := b.BuildDraft(context.Background(), 7, []int32{11, 12}, model.PaymentMethodPayPal, "billing@acme.test", time.Now().Add(14*24*time.Hour))

	assert.NoError(t, err)
	assert.Equal(t, model.Amount(22500), draft.BaseAmountCents)
	assert.Equal(t, model.Amount(1125), draft.PaymentFeeCents)
	assert.Equal(t, model.Amount(23625), draft.AmountCents)
	assert.Equal(t, draft.BaseAmountCents.Add(draft.PaymentFeeCents), draft.AmountCents)
}

func TestBuildDraftSelectionOrderPreserved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockPayeeRepo, mockOrderRepo, mockInvoiceRepo, mockDomainRepo := newDraftTestBusiness(ctrl)

	mockPayeeRepo.EXPECT().GetPayee(gomock.Any(), int32(7)).Return(payees.Payee{ID: 7}, nil)
	// Repository returns rows sorted by id even when the caller selected
	// them in reverse; the draft must follow the selection.
	mockOrderRepo.EXPECT().GetOrdersByIDs(gomock.Any(), []int32{12, 11}).Return(draftTestOrders, nil)
	mockInvoiceRepo.EXPECT().ListBilledOrderIDs(gomock.Any(), []int32{12, 11}).Return(nil, nil)
	mockDomainRepo.EXPECT().GetDomainNameByHost(gomock.Any(), gomock.Any()).Return("", pgx.ErrNoRows).Times(2)

	draft, err := b.BuildDraft(context.Background(), 7, []int32{12, 11}, model.PaymentMethodWire, "billing@acme.test", time.Time{})

	assert.NoError(t, err)
	assert.Equal(t, int32(12), draft.LineItems[0].OrderID)
	assert.Equal(t, int32(11), draft.LineItems[1].OrderID)
	assert.Contains(t, draft.LineItems[0].Description, "1. Link Building Services - #12")
	assert.Contains(t, draft.LineItems[1].Description, "2. Link Building Services - #11")
}

func TestBuildDraftDefaultDueDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockPayeeRepo, mockOrderRepo, mockInvoiceRepo, mockDomainRepo := newDraftTestBusiness(ctrl)

	mockPayeeRepo.EXPECT().GetPayee(gomock.Any(), int32(7)).Return(payees.Payee{ID: 7}, nil)
	mockOrderRepo.EXPECT().GetOrdersByIDs(gomock.Any(), []int32{11}).Return(draftTestOrders[:1], nil)
	mockInvoiceRepo.EXPECT().ListBilledOrderIDs(gomock.Any(), []int32{11}).Return(nil, nil)
	mockDomainRepo.EXPECT().GetDomainNameByHost(gomock.Any(), gomock.Any()).Return("", pgx.ErrNoRows)

	before := time.Now().AddDate(0, 0, defaultDueInDays)
	draft, err := b.BuildDraft(context.Background(), 7, []int32{11}, model.PaymentMethodWire, "billing@acme.test", time.Time{})
	after := time.Now().AddDate(0, 0, defaultDueInDays)

	assert.NoError(t, err)
	assert.False(t, draft.DueDate.Before(before))
	assert.False(t, draft.DueDate.After(after))
}

func TestBuildDraftTitleAppended(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockPayeeRepo, mockOrderRepo, mockInvoiceRepo, mockDomainRepo := newDraftTestBusiness(ctrl)

	titled := orders.Order{
		ID: 21, PayeeID: 7, PriceCents: 35000, Status: "completed",
		SourceUrl: "https://example.com/post",
		Title:     pgtype.Text{String: "10 Best CRM Tools", Valid: true},
	}

	mockPayeeRepo.EXPECT().GetPayee(gomock.Any(), int32(7)).Return(payees.Payee{ID: 7}, nil)
	mockOrderRepo.EXPECT().GetOrdersByIDs(gomock.Any(), []int32{21}).Return([]orders.Order{titled}, nil)
	mockInvoiceRepo.EXPECT().ListBilledOrderIDs(gomock.Any(), []int32{21}).Return(nil, nil)
	mockDomainRepo.EXPECT().GetDomainNameByHost(gomock.Any(), "example.com").Return("example.com", nil)

	draft, err := b.BuildDraft(context.Background(), 7, []int32{21}, model.PaymentMethodWire, "billing@acme.test", time.Time{})

	assert.NoError(t, err)
	assert.Equal(t, "1. Link Building Services - #21 - example.com - 10 Best CRM Tools - $350.00", draft.LineItems[0].Description)
}

func TestBuildDraftUnparsableURLFallsBackToRawURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockPayeeRepo, mockOrderRepo, mockInvoiceRepo, _ := newDraftTestBusiness(ctrl)

	raw := orders.Order{ID: 31, PayeeID: 7, PriceCents: 5000, Status: "completed", SourceUrl: "not a url"}

	mockPayeeRepo.EXPECT().GetPayee(gomock.Any(), int32(7)).Return(payees.Payee{ID: 7}, nil)
	mockOrderRepo.EXPECT().GetOrdersByIDs(gomock.Any(), []int32{31}).Return([]orders.Order{raw}, nil)
	mockInvoiceRepo.EXPECT().ListBilledOrderIDs(gomock.Any(), []int32{31}).Return(nil, nil)

	draft, err := b.BuildDraft(context.Background(), 7, []int32{31}, model.PaymentMethodWire, "billing@acme.test", time.Time{})

	assert.NoError(t, err)
	assert.Equal(t, "1. Link Building Services - #31 - not a url - $50.00", draft.LineItems[0].Description)
}

func TestBuildDraftValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	testCases := []struct {
		name          string
		payeeID       int32
		orderIDs      []int32
		method        model.PaymentMethod
		email         string
		setupMocks    func(*payee_repo.MockQuerier, *order_repo.MockQuerier, *invoice_repo.MockQuerier)
		expectedError string
	}{
		{
			name:          "unrecognized_method",
			payeeID:       7,
			orderIDs:      []int32{11},
			method:        model.PaymentMethod("check"),
			email:         "billing@acme.test",
			expectedError: "unrecognized payment method",
		},
		{
			name:          "invalid_email",
			payeeID:       7,
			orderIDs:      []int32{11},
			method:        model.PaymentMethodWire,
			email:         "not-an-email",
			expectedError: "invalid payee email",
		},
		{
			name:          "empty_selection",
			payeeID:       7,
			orderIDs:      nil,
			method:        model.PaymentMethodWire,
			email:         "billing@acme.test",
			expectedError: "no billable orders",
		},
		{
			name:     "unknown_payee",
			payeeID:  404,
			orderIDs: []int32{11},
			method:   model.PaymentMethodWire,
			email:    "billing@acme.test",
			setupMocks: func(p *payee_repo.MockQuerier, o *order_repo.MockQuerier, i *invoice_repo.MockQuerier) {
				p.EXPECT().GetPayee(gomock.Any(), int32(404)).Return(payees.Payee{}, pgx.ErrNoRows)
			},
			expectedError: "payee not found",
		},
		{
			name:     "foreign_order_rejected",
			payeeID:  7,
			orderIDs: []int32{11},
			method:   model.PaymentMethodWire,
			email:    "billing@acme.test",
			setupMocks: func(p *payee_repo.MockQuerier, o *order_repo.MockQuerier, i *invoice_repo.MockQuerier) {
				p.EXPECT().GetPayee(gomock.Any(), int32(7)).Return(payees.Payee{ID: 7}, nil)
				o.EXPECT().GetOrdersByIDs(gomock.Any(), []int32{11}).Return([]orders.Order{
					{ID: 11, PayeeID: 99, PriceCents: 100, Status: "completed", SourceUrl: "https://example.com"},
				}, nil)
			},
			expectedError: "does not belong to payee",
		},
		{
			name:     "non_billable_status_rejected",
			payeeID:  7,
			orderIDs: []int32{11},
			method:   model.PaymentMethodWire,
			email:    "billing@acme.test",
			setupMocks: func(p *payee_repo.MockQuerier, o *order_repo.MockQuerier, i *invoice_repo.MockQuerier) {
				p.EXPECT().GetPayee(gomock.Any(), int32(7)).Return(payees.Payee{ID: 7}, nil)
				o.EXPECT().GetOrdersByIDs(gomock.Any(), []int32{11}).Return([]orders.Order{
					{ID: 11, PayeeID: 7, PriceCents: 100, Status: "in_progress", SourceUrl: "https://example.com"},
				}, nil)
			},
			expectedError: "not billable",
		},
		{
			name:     "duplicate_selection_rejected",
			payeeID:  7,
			orderIDs: []int32{11, 11},
			method:   model.PaymentMethodWire,
			email:    "billing@acme.test",
			setupMocks: func(p *payee_repo.MockQuerier, o *order_repo.MockQuerier, i *invoice_repo.MockQuerier) {
				p.EXPECT().GetPayee(gomock.Any(), int32(7)).Return(payees.Payee{ID: 7}, nil)
				o.EXPECT().GetOrdersByIDs(gomock.Any(), []int32{11, 11}).Return(draftTestOrders[:1], nil)
			},
			expectedError: "selected twice",
		},
		{
			name:     "already_billed_order_conflicts",
			payeeID:  7,
			orderIDs: []int32{11},
			method:   model.PaymentMethodWire,
			email:    "billing@acme.test",
			setupMocks: func(p *payee_repo.MockQuerier, o *order_repo.MockQuerier, i *invoice_repo.MockQuerier) {
				p.EXPECT().GetPayee(gomock.Any(), int32(7)).Return(payees.Payee{ID: 7}, nil)
				o.EXPECT().GetOrdersByIDs(gomock.Any(), []int32{11}).Return(draftTestOrders[:1], nil)
				i.EXPECT().ListBilledOrderIDs(gomock.Any(), []int32{11}).Return([]int32{11}, nil)
			},
			expectedError: "order 11 is already billed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, mockPayeeRepo, mockOrderRepo, mockInvoiceRepo, _ := newDraftTestBusiness(ctrl)
			if tc.setupMocks != nil {
				tc.setupMocks(mockPayeeRepo, mockOrderRepo, mockInvoiceRepo)
			}

			draft, err := b.BuildDraft(context.Background(), tc.payeeID, tc.orderIDs, tc.method, tc.email, time.Time{})

			assert.Error(t, err)
			assert.Nil(t, draft)
			assert.Contains(t, err.Error(), tc.expectedError)
		})
	}
}
