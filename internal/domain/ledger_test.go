package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dp(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func TestLedgerRow_CoversCostOfLiving(t *testing.T) {
	col := decimal.NewFromInt(40000)

	testCases := []struct {
		name     string
		row      LedgerRow
		expected bool
	}{
		{
			name:     "no withdrawals recorded",
			row:      LedgerRow{Age: 22, CostOfLiving: col},
			expected: false,
		},
		{
			name:     "actual withdrawal above cost of living",
			row:      LedgerRow{Age: 65, CostOfLiving: col, Withdrawal: dp("40001")},
			expected: true,
		},
		{
			name:     "actual withdrawal exactly at cost of living",
			row:      LedgerRow{Age: 65, CostOfLiving: col, Withdrawal: dp("40000")},
			expected: false,
		},
		{
			name:     "theoretical withdrawal above cost of living",
			row:      LedgerRow{Age: 45, CostOfLiving: col, TheoreticalWithdrawal: dp("52000")},
			expected: true,
		},
		{
			name:     "theoretical withdrawal below cost of living",
			row:      LedgerRow{Age: 30, CostOfLiving: col, TheoreticalWithdrawal: dp("12000")},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.row.CoversCostOfLiving())
		})
	}
}

func TestLedger_Crossings(t *testing.T) {
	col := decimal.NewFromInt(40000)
	ledger := Ledger{
		{Age: 40, CostOfLiving: col, TheoreticalWithdrawal: dp("30000")},
		{Age: 41, CostOfLiving: col, TheoreticalWithdrawal: dp("45000")},
		{Age: 42, CostOfLiving: col, TheoreticalWithdrawal: dp("38000")},
		{Age: 43, CostOfLiving: col, TheoreticalWithdrawal: dp("47000")},
		{Age: 44, CostOfLiving: col, TheoreticalWithdrawal: dp("20000")},
	}

	first, ok := ledger.FirstCrossing()
	require.True(t, ok)
	assert.Equal(t, 41, first.Age)

	last, ok := ledger.LastCrossing()
	require.True(t, ok)
	assert.Equal(t, 43, last.Age)
}

func TestLedger_Crossings_NoneFound(t *testing.T) {
	ledger := Ledger{
		{Age: 40, CostOfLiving: decimal.NewFromInt(40000), TheoreticalWithdrawal: dp("10000")},
	}

	_, ok := ledger.FirstCrossing()
	assert.False(t, ok)
	_, ok = ledger.LastCrossing()
	assert.False(t, ok)
}

func TestLedger_RowAt(t *testing.T) {
	ledger := Ledger{
		{Age: 22, Wealth: decimal.NewFromInt(-30000)},
		{Age: 23, Wealth: decimal.NewFromInt(-5000)},
	}

	row, ok := ledger.RowAt(23)
	require.True(t, ok)
	assert.True(t, row.Wealth.Equal(decimal.NewFromInt(-5000)))

	_, ok = ledger.RowAt(99)
	assert.False(t, ok)
}

func TestLedger_PeakAndEndWealth(t *testing.T) {
	ledger := Ledger{
		{Age: 62, Wealth: decimal.NewFromInt(1200000)},
		{Age: 63, Wealth: decimal.NewFromInt(1500000)},
		{Age: 64, Wealth: decimal.NewFromInt(900000)},
	}

	assert.True(t, ledger.PeakWealth().Equal(decimal.NewFromInt(1500000)))
	assert.True(t, ledger.EndWealth().Equal(decimal.NewFromInt(900000)))

	var empty Ledger
	assert.True(t, empty.PeakWealth().IsZero())
	assert.True(t, empty.EndWealth().IsZero())
}

func TestLedgerRow_Retired(t *testing.T) {
	working := LedgerRow{Age: 30, Wage: dp("80000")}
	retired := LedgerRow{Age: 70, Withdrawal: dp("50000")}

	assert.False(t, working.Retired())
	assert.True(t, retired.Retired())
}

func TestLedgerRow_JSONOmitsAbsentFields(t *testing.T) {
	row := LedgerRow{
		Age:          70,
		Wealth:       decimal.NewFromInt(500000),
		CostOfLiving: decimal.NewFromInt(40000),
		Withdrawal:   dp("20000"),
	}

	data, err := json.Marshal(row)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"withdrawal"`)
	assert.NotContains(t, string(data), `"wage"`)
	assert.NotContains(t, string(data), `"theoretical_withdrawal"`)
}

func TestVerdictKind_String(t *testing.T) {
	assert.Equal(t, "unreachable", VerdictUnreachable.String())
	assert.Equal(t, "insufficient", VerdictInsufficient.String())
	assert.Equal(t, "sustainable", VerdictSustainable.String())
}

func TestVerdictKind_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(VerdictSustainable)
	require.NoError(t, err)
	assert.Equal(t, `"sustainable"`, string(data))

	var kind VerdictKind
	require.NoError(t, json.Unmarshal([]byte(`"insufficient"`), &kind))
	assert.Equal(t, VerdictInsufficient, kind)
}

func TestRunSet_ResultByName(t *testing.T) {
	rs := RunSet{
		Results: []ScenarioResult{
			{Name: "base"},
			{Name: "aggressive"},
		},
	}

	result, ok := rs.ResultByName("aggressive")
	require.True(t, ok)
	assert.Equal(t, "aggressive", result.Name)

	_, ok = rs.ResultByName("missing")
	assert.False(t, ok)
}
