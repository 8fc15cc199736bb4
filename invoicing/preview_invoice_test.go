package invoicing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/invoicing/mocks/business/invoice_business"
	"encore.app/invoicing/model"
)

func TestPreviewInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := invoice_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness}

	dueDate := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	draft := &model.InvoiceDraft{
		PayeeID:         7,
		PayeeEmail:      "billing@acme.test",
		PaymentMethod:   model.PaymentMethodPayPal,
		BaseAmountCents: 22500,
		PaymentFeeCents: 1125,
		AmountCents:     23625,
		DueDate:         dueDate,
		LineItems: []model.DraftLineItem{
			{OrderID: 11, Description: "1. Link Building Services - #11 - example.com - $150.00", AmountCents: 15000},
			{OrderID: 12, Description: "2. Link Building Services - #12 - blog-example.com - $75.00", AmountCents: 7500},
		},
	}

	mockBusiness.EXPECT().
		BuildDraft(gomock.Any(), int32(7), []int32{11, 12}, model.PaymentMethodPayPal, "billing@acme.test", dueDate).
		Return(draft, nil)

	response, err := service.PreviewInvoice(context.Background(), &PreviewInvoiceRequest{
		PayeeID:       7,
		OrderIDs:      []int32{11, 12},
		PaymentMethod: "paypal",
		PayeeEmail:    "billing@acme.test",
		DueDate:       dueDate,
	})

	assert.NoError(t, err)
	assert.Equal(t, *draft, response.Draft)
}

func TestPreviewInvoiceRequestValidation(t *testing.T) {
	valid := PreviewInvoiceRequest{
		PayeeID:       7,
		OrderIDs:      []int32{11},
		PaymentMethod: "wire",
		PayeeEmail:    "billing@acme.test",
	}

	testCases := []struct {
		name    string
		mutate  func(*PreviewInvoiceRequest)
		wantErr bool
	}{
		{
			name:   "valid_request",
			mutate: func(r *PreviewInvoiceRequest) {},
		},
		{
			name:    "missing_payee",
			mutate:  func(r *PreviewInvoiceRequest) { r.PayeeID = 0 },
			wantErr: true,
		},
		{
			name:    "empty_order_selection",
			mutate:  func(r *PreviewInvoiceRequest) { r.OrderIDs = nil },
			wantErr: true,
		},
		{
			name:    "zero_order_id",
			mutate:  func(r *PreviewInvoiceRequest) { r.OrderIDs = []int32{0} },
			wantErr: true,
		},
		{
			name:    "unknown_payment_method",
			mutate:  func(r *PreviewInvoiceRequest) { r.PaymentMethod = "check" },
			wantErr: true,
		},
		{
			name:    "bad_email",
			mutate:  func(r *PreviewInvoiceRequest) { r.PayeeEmail = "nope" },
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)

			err := req.Validate()

			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
