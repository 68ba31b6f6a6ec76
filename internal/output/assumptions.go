package output

import "github.com/shopspring/decimal"

// DefaultAssumptions lists key modeling assumptions rendered in detailed
// outputs when a run set carries none of its own. Matches what
// domain.Configuration.GenerateAssumptions produces for the default policy.
var DefaultAssumptions = []string{
	"Withdrawals are taxed as long-term capital gains on the full amount",
	"Wages pay progressive federal tax plus a flat state tax",
	"Flat state income tax rate: 10.0% of wage income",
	"Tax bracket bounds scale with inflation each simulated year",
	"Cost of living and dependent cost baselines inflate every year",
	"Portfolio returns compound once per year at the scenario's rate of return",
}

var decimalHundred = decimal.NewFromInt(100)
