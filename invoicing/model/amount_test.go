package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmountMulRate(t *testing.T) {
	rate := decimal.RequireFromString("0.05")

	testCases := []struct {
		name     string
		amount   Amount
		expected Amount
	}{
		{name: "exact_result", amount: 10000, expected: 500},
		{name: "half_cent_rounds_up", amount: 50, expected: 3},
		{name: "below_half_rounds_down", amount: 49, expected: 2},
		{name: "zero", amount: 0, expected: 0},
		{name: "large_amount_no_drift", amount: 123456789, expected: 6172839},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.amount.MulRate(rate))
		})
	}
}

func TestAmountAddStaysExact(t *testing.T) {
	// Repeated addition of a float-hostile value must not drift.
	var total Amount
	for i := 0; i < 1000; i++ {
		total = total.Add(FromMajorUnits(0.10))
	}
	assert.Equal(t, Amount(10000), total)
}

func TestFromMajorUnits(t *testing.T) {
	assert.Equal(t, Amount(15000), FromMajorUnits(150.00))
	assert.Equal(t, Amount(7500), FromMajorUnits(75.00))
	assert.Equal(t, Amount(1), FromMajorUnits(0.005))
	assert.Equal(t, Amount(29), FromMajorUnits(0.29))
}

func TestAmountDisplay(t *testing.T) {
	assert.Equal(t, "$150.00", Amount(15000).String())
	assert.Equal(t, "$0.05", Amount(5).String())
	assert.Equal(t, "$236.25", Amount(23625).String())
}

func TestMajorUnitsRoundTrip(t *testing.T) {
	assert.InDelta(t, 225.00, Amount(22500).MajorUnits(), 1e-9)
}
