package fee

import (
	"context"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
)

// paypalFeeRate is the PayPal processing surcharge applied on top of the
// base amount. Wire transfers carry no surcharge.
var paypalFeeRate = decimal.RequireFromString("0.05")

// ComputeFee derives the payment-method surcharge and the final payable
// total. The fee rounds half up to the nearest minor unit.
func (b *business) ComputeFee(ctx context.Context, baseAmount model.Amount, method model.PaymentMethod) (*model.FeeResult, error) {
	switch method {
	case model.PaymentMethodWire:
		return &model.FeeResult{
			FeeCents:   0,
			TotalCents: baseAmount,
		}, nil

	case model.PaymentMethodPayPal:
		feeAmount := baseAmount.MulRate(paypalFeeRate)
		return &model.FeeResult{
			FeeCents:   feeAmount,
			TotalCents: baseAmount.Add(feeAmount),
		}, nil

	default:
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "unrecognized payment method"}
	}
}
