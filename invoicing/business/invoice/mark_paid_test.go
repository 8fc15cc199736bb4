package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/mocks/domain/state_machine"
	"encore.app/invoicing/mocks/repository/invoice_repo"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/invoices"
)

func TestMarkPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	paidAt := time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		lockedStatus  string
		expectPayment bool
		expectedError string
	}{
		{
			name:          "pending_invoice_is_paid",
			lockedStatus:  "pending",
			expectPayment: true,
		},
		{
			name:          "overdue_is_still_pending_in_storage",
			lockedStatus:  "pending",
			expectPayment: true,
		},
		{
			name:          "already_paid",
			lockedStatus:  "paid",
			expectedError: "invoice is already paid",
		},
		{
			name:          "unknown_stored_status",
			lockedStatus:  "void",
			expectedError: "invoice is not in a payable state",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockStateMachine := state_machine.NewMockStateMachine(ctrl)
			mockInvoiceRepo := invoice_repo.NewMockQuerier(ctrl)
			b := &business{invoiceRepo: mockInvoiceRepo, stateMachine: mockStateMachine}

			mockStateMachine.EXPECT().
				GetInvoiceWithLock(gomock.Any(), int32(42), gomock.Any()).
				DoAndReturn(func(ctx context.Context, id int32, businessLogic func(domain.Tx, invoices.Invoice) error) error {
					tx := domain.Tx{Invoices: mockInvoiceRepo}
					return businessLogic(tx, invoices.Invoice{ID: id, Status: tc.lockedStatus})
				})

			if tc.expectPayment {
				mockInvoiceRepo.EXPECT().
					UpdateInvoicePaid(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, arg invoices.UpdateInvoicePaidParams) (invoices.Invoice, error) {
						assert.Equal(t, int32(42), arg.ID)
						assert.Equal(t, string(model.InvoiceStatusPaid), arg.Status)
						assert.True(t, arg.PaidAt.Valid)
						return invoices.Invoice{ID: arg.ID, Status: arg.Status, PaidAt: arg.PaidAt}, nil
					})
				mockInvoiceRepo.EXPECT().GetInvoice(gomock.Any(), int32(42)).Return(invoices.Invoice{
					ID:     42,
					Status: "paid",
					PaidAt: pgtype.Timestamptz{Time: paidAt, Valid: true},
				}, nil)
				mockInvoiceRepo.EXPECT().ListLineItemsByInvoice(gomock.Any(), int32(42)).Return(nil, nil)
			}

			result, err := b.MarkPaid(context.Background(), 42)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, model.InvoiceStatusPaid, result.Status)
			assert.NotNil(t, result.PaidAt)
			assert.Equal(t, paidAt, *result.PaidAt)
		})
	}
}

func TestMarkPaidRecordsCurrentTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStateMachine := state_machine.NewMockStateMachine(ctrl)
	mockInvoiceRepo := invoice_repo.NewMockQuerier(ctrl)
	b := &business{invoiceRepo: mockInvoiceRepo, stateMachine: mockStateMachine}

	before := time.Now()
	mockStateMachine.EXPECT().
		GetInvoiceWithLock(gomock.Any(), int32(7), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id int32, businessLogic func(domain.Tx, invoices.Invoice) error) error {
			tx := domain.Tx{Invoices: mockInvoiceRepo}
			return businessLogic(tx, invoices.Invoice{ID: id, Status: "pending"})
		})
	mockInvoiceRepo.EXPECT().
		UpdateInvoicePaid(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, arg invoices.UpdateInvoicePaidParams) (invoices.Invoice, error) {
			assert.False(t, arg.PaidAt.Time.Before(before))
			assert.False(t, arg.PaidAt.Time.After(time.Now()))
			return invoices.Invoice{ID: arg.ID, Status: arg.Status, PaidAt: arg.PaidAt}, nil
		})
	mockInvoiceRepo.EXPECT().GetInvoice(gomock.Any(), int32(7)).Return(invoices.Invoice{ID: 7, Status: "paid"}, nil)
	mockInvoiceRepo.EXPECT().ListLineItemsByInvoice(gomock.Any(), int32(7)).Return(nil, nil)

	_, err := b.MarkPaid(context.Background(), 7)
	assert.NoError(t, err)
}
