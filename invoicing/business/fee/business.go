package fee

import (
	"context"

	"encore.app/invoicing/model"
)

type Business interface {
	ComputeFee(ctx context.Context, baseAmount model.Amount, method model.PaymentMethod) (*model.FeeResult, error)
}

// business computes payment-method surcharges. It is pure and deterministic.
type business struct{}

// NewFeeBusiness creates a new fee calculator.
func NewFeeBusiness() Business {
	return &business{}
}
