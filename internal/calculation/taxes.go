package calculation

import (
	"github.com/firesim/retirement-simulator/internal/domain"
	"github.com/firesim/retirement-simulator/pkg/growth"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Federal brackets default to the 2019 single-filer tables and apply to
//    the full wage with no standard deduction.
//
// 2. Withdrawals during retirement are taxed as long-term capital gains on
//    the whole withdrawal amount, a pessimistic simplification (real basis
//    accounting would tax only the gain portion).
//
// 3. State tax is a flat rate on wage income only; withdrawals are exempt.
//
// 4. Bracket scaling, when enabled, multiplies every bracket bound by
//    (1+inflation)^yearsSinceStart so brackets keep pace with the simulated
//    cost of living. Disabling it models a fixed-bracket regime.

// evaluateBrackets runs the progressive-marginal-rate calculation over an
// ordered table. Brackets whose lower bound is at or above the amount
// contribute nothing; the open top bracket captures everything above its
// lower bound. Non-positive amounts owe zero tax.
func evaluateBrackets(amount decimal.Decimal, brackets domain.BracketTable) decimal.Decimal {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	var totalTax decimal.Decimal
	for _, bracket := range brackets {
		if amount.LessThanOrEqual(bracket.Min) {
			break
		}
		top := amount
		if !bracket.Open() {
			top = decimal.Min(amount, bracket.Max)
		}
		incomeInBracket := top.Sub(bracket.Min)
		if incomeInBracket.GreaterThan(decimal.Zero) {
			totalTax = totalTax.Add(incomeInBracket.Mul(bracket.Rate))
		}
	}

	return totalTax
}

// FederalTaxCalculator handles ordinary income tax over a progressive table.
type FederalTaxCalculator struct {
	Brackets domain.BracketTable
}

// NewFederalTaxCalculator creates a federal tax calculator with the default
// 2019 single-filer table.
func NewFederalTaxCalculator() *FederalTaxCalculator {
	return &FederalTaxCalculator{
		Brackets: domain.Default2019FederalBrackets(),
	}
}

// NewFederalTaxCalculatorWithBrackets creates a federal tax calculator with a
// configurable table. An empty table falls back to the defaults.
func NewFederalTaxCalculatorWithBrackets(brackets domain.BracketTable) *FederalTaxCalculator {
	if len(brackets) == 0 {
		brackets = domain.Default2019FederalBrackets()
	}
	return &FederalTaxCalculator{Brackets: brackets}
}

// CalculateTax returns the tax owed on taxableIncome with every bracket
// bound multiplied by scale.
func (ftc *FederalTaxCalculator) CalculateTax(taxableIncome, scale decimal.Decimal) decimal.Decimal {
	brackets := ftc.Brackets
	if !scale.Equal(decimalOne) {
		brackets = brackets.Scale(scale)
	}
	return evaluateBrackets(taxableIncome, brackets)
}

// CapitalGainsCalculator handles tax on investment withdrawals. Long-term
// gains use their own progressive table; short-term gains are taxed as
// ordinary income through the federal calculator.
type CapitalGainsCalculator struct {
	Brackets domain.BracketTable
	ordinary *FederalTaxCalculator
}

// NewCapitalGainsCalculator creates a capital gains calculator with the
// default 2019 single-filer table.
func NewCapitalGainsCalculator() *CapitalGainsCalculator {
	return &CapitalGainsCalculator{
		Brackets: domain.Default2019CapitalGainsBrackets(),
		ordinary: NewFederalTaxCalculator(),
	}
}

// NewCapitalGainsCalculatorWithBrackets creates a capital gains calculator
// with a configurable table, delegating short-term gains to ordinary. Empty
// tables fall back to the defaults.
func NewCapitalGainsCalculatorWithBrackets(brackets domain.BracketTable, ordinary *FederalTaxCalculator) *CapitalGainsCalculator {
	if len(brackets) == 0 {
		brackets = domain.Default2019CapitalGainsBrackets()
	}
	if ordinary == nil {
		ordinary = NewFederalTaxCalculator()
	}
	return &CapitalGainsCalculator{Brackets: brackets, ordinary: ordinary}
}

// CalculateLongTermTax returns the long-term capital gains tax on gains with
// bracket bounds multiplied by scale.
func (cgc *CapitalGainsCalculator) CalculateLongTermTax(gains, scale decimal.Decimal) decimal.Decimal {
	brackets := cgc.Brackets
	if !scale.Equal(decimalOne) {
		brackets = brackets.Scale(scale)
	}
	return evaluateBrackets(gains, brackets)
}

// CalculateShortTermTax taxes short-term gains as ordinary income.
func (cgc *CapitalGainsCalculator) CalculateShortTermTax(gains, scale decimal.Decimal) decimal.Decimal {
	return cgc.ordinary.CalculateTax(gains, scale)
}

// StateTaxCalculator handles the flat state income tax on earned income.
// Withdrawals are not state taxed.
type StateTaxCalculator struct {
	Rate decimal.Decimal
}

// NewStateTaxCalculator creates a state tax calculator with the default rate.
func NewStateTaxCalculator() *StateTaxCalculator {
	return &StateTaxCalculator{
		Rate: domain.DefaultStateRate(),
	}
}

// NewStateTaxCalculatorWithRate creates a state tax calculator with a
// configurable flat rate.
func NewStateTaxCalculatorWithRate(rate decimal.Decimal) *StateTaxCalculator {
	return &StateTaxCalculator{Rate: rate}
}

// CalculateTax applies the flat rate to wage income.
func (stc *StateTaxCalculator) CalculateTax(wageIncome decimal.Decimal) decimal.Decimal {
	if wageIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return wageIncome.Mul(stc.Rate)
}

// TaxCalculator bundles the federal, capital gains and state calculators and
// applies the policy's bracket scaling for a given simulation's inflation
// rate.
type TaxCalculator struct {
	FederalCalc *FederalTaxCalculator
	GainsCalc   *CapitalGainsCalculator
	StateCalc   *StateTaxCalculator

	scaleWithInflation bool
	inflationRate      decimal.Decimal
}

var decimalOne = decimal.NewFromInt(1)

// NewTaxCalculator creates a tax calculator with the default policy and no
// bracket scaling. Useful for evaluating tables at their base-year bounds.
func NewTaxCalculator() *TaxCalculator {
	federal := NewFederalTaxCalculator()
	return &TaxCalculator{
		FederalCalc: federal,
		GainsCalc:   NewCapitalGainsCalculatorWithBrackets(nil, federal),
		StateCalc:   NewStateTaxCalculator(),
	}
}

// NewTaxCalculatorWithPolicy creates a tax calculator from a policy plus the
// simulation's inflation rate, which drives bracket scaling when the policy
// enables it.
func NewTaxCalculatorWithPolicy(policy domain.TaxPolicy, inflationRate decimal.Decimal) *TaxCalculator {
	federal := NewFederalTaxCalculatorWithBrackets(policy.FederalBrackets)
	return &TaxCalculator{
		FederalCalc:        federal,
		GainsCalc:          NewCapitalGainsCalculatorWithBrackets(policy.CapitalGainsBrackets, federal),
		StateCalc:          NewStateTaxCalculatorWithRate(policy.StateRate),
		scaleWithInflation: policy.ScaleBracketsWithInflation,
		inflationRate:      inflationRate,
	}
}

// scaleFor returns the bracket scale factor for a year offset from the start
// of the simulation.
func (tc *TaxCalculator) scaleFor(yearsSinceStart int) decimal.Decimal {
	if !tc.scaleWithInflation || yearsSinceStart <= 0 {
		return decimalOne
	}
	return growth.CompoundFactor(tc.inflationRate, yearsSinceStart)
}

// FederalIncomeTax returns the ordinary income tax on income for a year
// offset from the simulation start.
func (tc *TaxCalculator) FederalIncomeTax(income decimal.Decimal, yearsSinceStart int) decimal.Decimal {
	return tc.FederalCalc.CalculateTax(income, tc.scaleFor(yearsSinceStart))
}

// LongTermCapitalGainsTax returns the long-term gains tax on gains for a
// year offset from the simulation start.
func (tc *TaxCalculator) LongTermCapitalGainsTax(gains decimal.Decimal, yearsSinceStart int) decimal.Decimal {
	return tc.GainsCalc.CalculateLongTermTax(gains, tc.scaleFor(yearsSinceStart))
}

// ShortTermCapitalGainsTax returns the short-term gains tax on gains,
// applying ordinary income rates.
func (tc *TaxCalculator) ShortTermCapitalGainsTax(gains decimal.Decimal, yearsSinceStart int) decimal.Decimal {
	return tc.GainsCalc.CalculateShortTermTax(gains, tc.scaleFor(yearsSinceStart))
}

// StateIncomeTax returns the flat state tax on wage income.
func (tc *TaxCalculator) StateIncomeTax(wageIncome decimal.Decimal) decimal.Decimal {
	return tc.StateCalc.CalculateTax(wageIncome)
}
