package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a currency amount in integer minor units (cents).
// All arithmetic in the billing pipeline stays in minor units; floats
// appear only at the conversion and display boundaries.
type Amount int64

var minorUnitsPerMajor = decimal.NewFromInt(100)

// Add returns the sum of two amounts.
func (a Amount) Add(b Amount) Amount {
	return a + b
}

// MulRate multiplies the amount by a decimal rate and rounds half up
// to the nearest minor unit.
func (a Amount) MulRate(rate decimal.Decimal) Amount {
	result := decimal.NewFromInt(int64(a)).Mul(rate).Round(0)
	return Amount(result.IntPart())
}

// FromMajorUnits converts a major-unit float (dollars) to an Amount,
// rounding half up to the nearest cent.
func FromMajorUnits(major float64) Amount {
	result := decimal.NewFromFloat(major).Mul(minorUnitsPerMajor).Round(0)
	return Amount(result.IntPart())
}

// MajorUnits returns the amount as a major-unit float for callers that
// need one. Not for arithmetic.
func (a Amount) MajorUnits() float64 {
	f, _ := decimal.NewFromInt(int64(a)).Div(minorUnitsPerMajor).Float64()
	return f
}

// String formats the amount for display, e.g. "$150.00".
func (a Amount) String() string {
	return fmt.Sprintf("$%s", decimal.NewFromInt(int64(a)).Div(minorUnitsPerMajor).StringFixed(2))
}
