package domain

import (
	"github.com/shopspring/decimal"
)

// LedgerRow captures the state of one simulated year, recorded before that
// year's wealth update. Pointer fields are phase dependent: Wage and the
// theoretical projections are only present during accumulation, Withdrawal
// and Surplus only during decumulation.
type LedgerRow struct {
	Age             int             `json:"age"`
	Wealth          decimal.Decimal `json:"wealth"`
	PortfolioReturn decimal.Decimal `json:"portfolio_return"`
	CostOfLiving    decimal.Decimal `json:"cost_of_living"`

	Wage       *decimal.Decimal `json:"wage,omitempty"`
	Withdrawal *decimal.Decimal `json:"withdrawal,omitempty"` // post-tax

	Surplus        *decimal.Decimal `json:"surplus,omitempty"`
	SurplusPresent *decimal.Decimal `json:"surplus_present,omitempty"`

	TheoreticalWithdrawal     *decimal.Decimal `json:"theoretical_withdrawal,omitempty"` // post-tax
	TheoreticalSurplus        *decimal.Decimal `json:"theoretical_surplus,omitempty"`
	TheoreticalSurplusPresent *decimal.Decimal `json:"theoretical_surplus_present,omitempty"`
}

// CoversCostOfLiving reports whether the row's actual or theoretical
// post-tax withdrawal strictly exceeds its cost of living. Rows where both
// withdrawals are absent never cover.
func (r LedgerRow) CoversCostOfLiving() bool {
	if r.Withdrawal != nil && r.Withdrawal.GreaterThan(r.CostOfLiving) {
		return true
	}
	if r.TheoreticalWithdrawal != nil && r.TheoreticalWithdrawal.GreaterThan(r.CostOfLiving) {
		return true
	}
	return false
}

// Retired reports whether the row belongs to the decumulation phase.
func (r LedgerRow) Retired() bool {
	return r.Wage == nil
}

// Ledger is the year-by-year record of a simulation run, one row per age in
// ascending order.
type Ledger []LedgerRow

// RowAt returns the row for the given age.
func (l Ledger) RowAt(age int) (LedgerRow, bool) {
	for _, row := range l {
		if row.Age == age {
			return row, true
		}
	}
	return LedgerRow{}, false
}

// FirstCrossing returns the earliest row whose withdrawal covers its cost of
// living.
func (l Ledger) FirstCrossing() (LedgerRow, bool) {
	for _, row := range l {
		if row.CoversCostOfLiving() {
			return row, true
		}
	}
	return LedgerRow{}, false
}

// LastCrossing returns the latest row whose withdrawal covers its cost of
// living.
func (l Ledger) LastCrossing() (LedgerRow, bool) {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].CoversCostOfLiving() {
			return l[i], true
		}
	}
	return LedgerRow{}, false
}

// PeakWealth returns the highest recorded wealth across the run. An empty
// ledger reports zero.
func (l Ledger) PeakWealth() decimal.Decimal {
	if len(l) == 0 {
		return decimal.Zero
	}
	peak := l[0].Wealth
	for _, row := range l[1:] {
		if row.Wealth.GreaterThan(peak) {
			peak = row.Wealth
		}
	}
	return peak
}

// EndWealth returns the wealth recorded on the final row. An empty ledger
// reports zero.
func (l Ledger) EndWealth() decimal.Decimal {
	if len(l) == 0 {
		return decimal.Zero
	}
	return l[len(l)-1].Wealth
}
