// Package growth provides compounding and discounting helpers shared by the
// simulation and tax layers. All helpers treat a non-positive year count as
// "no elapsed time" and return the input unchanged.
package growth

import (
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// CompoundFactor returns (1+rate)^years.
func CompoundFactor(rate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return one
	}
	return one.Add(rate).Pow(decimal.NewFromInt(int64(years)))
}

// Inflate grows amount by rate compounded over the given number of years.
func Inflate(amount, rate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return amount
	}
	return amount.Mul(CompoundFactor(rate, years))
}

// PresentValue discounts a future amount back by the given number of years,
// using rate as the discount rate.
func PresentValue(amount, rate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return amount
	}
	return amount.Div(CompoundFactor(rate, years))
}
