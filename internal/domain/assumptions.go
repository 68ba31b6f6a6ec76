package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// GenerateAssumptions creates the modeling-assumptions list rendered in
// report headers from the configuration's actual values.
func (c *Configuration) GenerateAssumptions() []string {
	policy := c.TaxPolicy
	if policy.IsZero() {
		policy = DefaultTaxPolicy()
	}

	bracketScaling := "Tax bracket bounds scale with inflation each simulated year"
	if !policy.ScaleBracketsWithInflation {
		bracketScaling = "Tax bracket bounds stay fixed at their base-year values"
	}

	return []string{
		"Withdrawals are taxed as long-term capital gains on the full amount",
		"Wages pay progressive federal tax plus a flat state tax",
		fmt.Sprintf("Flat state income tax rate: %.1f%% of wage income", policy.StateRate.Mul(decimalHundred).InexactFloat64()),
		bracketScaling,
		"Cost of living and dependent cost baselines inflate every year",
		"Portfolio returns compound once per year at the scenario's rate of return",
	}
}
