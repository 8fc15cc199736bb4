package invoicing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/invoicing/mocks/business/invoice_business"
	"encore.app/invoicing/model"
)

func TestListBillableOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := invoice_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness}

	t.Run("returns_orders", func(t *testing.T) {
		orders := []model.Order{
			{ID: 11, PayeeID: 7, PriceCents: 15000, Status: model.OrderStatusCompleted, SourceURL: "https://example.com/a"},
			{ID: 12, PayeeID: 7, PriceCents: 7500, Status: model.OrderStatusGuestPostPublished, SourceURL: "https://blog-example.com/b"},
		}
		mockBusiness.EXPECT().FindBillableOrders(gomock.Any(), int32(7)).Return(orders, nil)

		response, err := service.ListBillableOrders(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, orders, response.Orders)
	})

	t.Run("empty_result", func(t *testing.T) {
		mockBusiness.EXPECT().FindBillableOrders(gomock.Any(), int32(8)).Return([]model.Order{}, nil)

		response, err := service.ListBillableOrders(context.Background(), 8)

		assert.NoError(t, err)
		assert.Empty(t, response.Orders)
	})

	t.Run("invalid_payee_id", func(t *testing.T) {
		response, err := service.ListBillableOrders(context.Background(), 0)

		assert.Error(t, err)
		assert.Nil(t, response)
		assert.Contains(t, err.Error(), "invalid payee ID")
	})
}
