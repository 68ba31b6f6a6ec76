package integration

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firesim/retirement-simulator/internal/calculation"
	"github.com/firesim/retirement-simulator/internal/config"
	"github.com/firesim/retirement-simulator/internal/domain"
)

func TestEndToEndSimulation(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Len(t, cfg.Scenarios, 2)

	engine := calculation.NewCalculationEngine()
	results, err := engine.RunScenarios(cfg)
	require.NoError(t, err)
	require.Len(t, results.Results, 2)
	require.Len(t, results.Summaries, 2)
	assert.NotEmpty(t, results.Assumptions)

	base := results.Results[0]
	child := results.Results[1]
	assert.Equal(t, "Early saver", base.Name)
	assert.Equal(t, "Child at 27", child.Name)

	// One ledger row per age, first working year through death.
	wantRows := cfg.Scenarios[0].Parameters.SimulatedYears()
	require.Len(t, base.Ledger, wantRows)
	require.Len(t, child.Ledger, wantRows)
	assert.Equal(t, 23, base.Ledger[0].Age)
	assert.Equal(t, 100, base.Ledger[len(base.Ledger)-1].Age)

	// Phase boundary sits at the configured target retirement age.
	lastWorking, ok := base.Ledger.RowAt(47)
	require.True(t, ok)
	assert.False(t, lastWorking.Retired())
	firstRetired, ok := base.Ledger.RowAt(48)
	require.True(t, ok)
	assert.True(t, firstRetired.Retired())
	assert.NotNil(t, firstRetired.Withdrawal)

	// A 9% return against 3% inflation and a 4% withdrawal rate sustains
	// retirement in both scenarios.
	assert.Equal(t, domain.VerdictSustainable, base.Verdict.Kind)
	assert.Equal(t, domain.VerdictSustainable, child.Verdict.Kind)
	assert.GreaterOrEqual(t, base.Verdict.CandidateAge, 35)
	assert.Less(t, base.Verdict.CandidateAge, 100)
	assert.Equal(t, 100, base.Verdict.DeathAge)
	assert.True(t, base.Verdict.WithdrawalRate.Equal(decimal.NewFromFloat(0.04)))

	// Raising a dependent never brings retirement closer.
	assert.GreaterOrEqual(t, child.Verdict.CandidateAge, base.Verdict.CandidateAge)

	// Child costs start flowing at age 27, so wealth trails the baseline.
	baseAt30, ok := base.Ledger.RowAt(30)
	require.True(t, ok)
	childAt30, ok := child.Ledger.RowAt(30)
	require.True(t, ok)
	assert.True(t, childAt30.Wealth.LessThan(baseAt30.Wealth),
		"dependent scenario should hold less wealth at 30: %s vs %s",
		childAt30.Wealth, baseAt30.Wealth)
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.NoError(t, parser.ValidateConfiguration(cfg))

	// Duplicate scenario names are rejected.
	cfg.Scenarios[1].Name = cfg.Scenarios[0].Name
	err = parser.ValidateConfiguration(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate scenario name")
}
