package output

import (
	"strconv"

	"github.com/firesim/retirement-simulator/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.FromDecimal(amount).Format()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

func intToString(v int) string { return strconv.Itoa(v) }

func boolToString(v bool) string { return strconv.FormatBool(v) }

// optionalFixed renders a phase-dependent ledger field, empty when absent.
func optionalFixed(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}

// optionalCurrency renders a phase-dependent ledger field as currency, with a
// dash placeholder when absent.
func optionalCurrency(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return FormatCurrency(*d)
}
