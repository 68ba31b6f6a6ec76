package calculation

import (
	"testing"

	"github.com/firesim/retirement-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSearch(t *testing.T, params domain.Parameters, events []LifeEvent) domain.Verdict {
	t.Helper()
	policy := domain.DefaultTaxPolicy()
	sim, err := NewSimulation(params, policy, events)
	require.NoError(t, err)
	ledger := sim.Run()

	verdict, err := EarliestRetirement(params, policy, events, ledger)
	require.NoError(t, err)
	return verdict
}

// TestEarliestRetirement_Unreachable covers the case where no simulated year
// ever produces a withdrawal covering the cost of living.
func TestEarliestRetirement_Unreachable(t *testing.T) {
	params := domain.Parameters{
		StartingWealth:      decimal.NewFromInt(1000),
		RateOfReturn:        decimal.NewFromFloat(0.02),
		CostOfLiving:        decimal.NewFromInt(40000),
		InflationRate:       decimal.NewFromFloat(0.03),
		WithdrawalRate:      decimal.NewFromFloat(0.04),
		StartWorkingAge:     22,
		TargetRetirementAge: 64,
		DeathAge:            100,
	}

	verdict := runSearch(t, params, nil)

	assert.Equal(t, domain.VerdictUnreachable, verdict.Kind)
	assert.Equal(t, 0, verdict.CandidateAge)
	assert.False(t, verdict.Sustainable())
}

// TestEarliestRetirement_Sustainable starts with enough wealth that a 4%
// withdrawal covers the cost of living from the very first year.
func TestEarliestRetirement_Sustainable(t *testing.T) {
	params := domain.Parameters{
		StartingWealth:      decimal.NewFromInt(2000000),
		RateOfReturn:        decimal.NewFromFloat(0.07),
		CostOfLiving:        decimal.NewFromInt(40000),
		WithdrawalRate:      decimal.NewFromFloat(0.04),
		StartWorkingAge:     40,
		TargetRetirementAge: 41,
		DeathAge:            70,
	}

	verdict := runSearch(t, params, nil)

	require.Equal(t, domain.VerdictSustainable, verdict.Kind)
	// The base crossing lands on the first working year, so the candidate is
	// clamped to the earliest supported retirement age.
	assert.Equal(t, 41, verdict.CandidateAge)
	assert.Equal(t, 70, verdict.RunsOutAge)
	assert.True(t, verdict.Growing)
	assert.True(t, verdict.StartWealth.Equal(decimal.NewFromInt(2000000)))
	assert.True(t, verdict.EndWealth.GreaterThan(verdict.StartWealth))
	assert.True(t, verdict.DeltaWealth.Equal(verdict.EndWealth.Sub(verdict.StartWealth)))
	assert.Equal(t, 70, verdict.DeathAge)
	assert.True(t, verdict.WithdrawalRate.Equal(decimal.NewFromFloat(0.04)))
}

// TestEarliestRetirement_WorkFloor floors the candidate age to the
// work-till-at-least setting even when the crossing arrives earlier.
func TestEarliestRetirement_WorkFloor(t *testing.T) {
	params := domain.Parameters{
		StartingWealth:      decimal.NewFromInt(2000000),
		RateOfReturn:        decimal.NewFromFloat(0.07),
		CostOfLiving:        decimal.NewFromInt(40000),
		WithdrawalRate:      decimal.NewFromFloat(0.04),
		StartWorkingAge:     40,
		TargetRetirementAge: 55,
		WorkTillAtLeast:     45,
		DeathAge:            70,
	}

	verdict := runSearch(t, params, nil)

	require.Equal(t, domain.VerdictSustainable, verdict.Kind)
	assert.Equal(t, 45, verdict.CandidateAge)
}

// TestEarliestRetirement_Insufficient builds a run whose withdrawals cover
// the cost of living at first but fall behind high inflation before death.
func TestEarliestRetirement_Insufficient(t *testing.T) {
	params := domain.Parameters{
		StartingWealth:      decimal.NewFromInt(3000000),
		RateOfReturn:        decimal.NewFromFloat(0.01),
		CostOfLiving:        decimal.NewFromInt(40000),
		InflationRate:       decimal.NewFromFloat(0.08),
		WithdrawalRate:      decimal.NewFromFloat(0.04),
		StartWorkingAge:     30,
		TargetRetirementAge: 31,
		DeathAge:            100,
	}

	verdict := runSearch(t, params, nil)

	require.Equal(t, domain.VerdictInsufficient, verdict.Kind)
	assert.Equal(t, 31, verdict.CandidateAge)
	assert.GreaterOrEqual(t, verdict.RunsOutAge, 31)
	assert.Less(t, verdict.RunsOutAge, 100)
	assert.False(t, verdict.Sustainable())
}

// TestEarliestRetirement_TemplateEventsStayPristine verifies the search can
// be re-run from the same template events without state leaking between the
// base and validation simulations.
func TestEarliestRetirement_TemplateEventsStayPristine(t *testing.T) {
	template := []LifeEvent{&AgingDependent{StartAge: 45, College: true}}
	params := domain.Parameters{
		StartingWealth:      decimal.NewFromInt(2000000),
		RateOfReturn:        decimal.NewFromFloat(0.07),
		CostOfLiving:        decimal.NewFromInt(40000),
		WithdrawalRate:      decimal.NewFromFloat(0.04),
		StartWorkingAge:     40,
		TargetRetirementAge: 55,
		DeathAge:            70,
	}

	first := runSearch(t, params, template)
	second := runSearch(t, params, template)

	assert.Equal(t, first.Kind, second.Kind)
	assert.Equal(t, first.CandidateAge, second.CandidateAge)
	assert.Equal(t, first.RunsOutAge, second.RunsOutAge)
	assert.True(t, first.EndWealth.Equal(second.EndWealth))
	assert.Equal(t, 0, template[0].(*AgingDependent).dependentAge)
}
