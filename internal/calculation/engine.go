package calculation

import (
	"context"
	"fmt"

	"github.com/firesim/retirement-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine orchestrates simulation runs and retirement searches
// across scenarios.
type CalculationEngine struct {
	Debug  bool // Enable debug output for per-scenario run details
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided,
// a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunScenario simulates one scenario end to end: a full lifetime run plus
// the earliest-retirement search over its ledger.
func (ce *CalculationEngine) RunScenario(ctx context.Context, config *domain.Configuration, scenario *domain.Scenario) (*domain.ScenarioResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	params := scenario.Parameters

	// Validate inflation and withdrawal rates are reasonable (allow deflation
	// but cap extreme values)
	if params.InflationRate.LessThan(decimal.NewFromFloat(-0.10)) || params.InflationRate.GreaterThan(decimal.NewFromFloat(0.20)) {
		return nil, fmt.Errorf("inflation rate must be between -10%% and 20%%, got %s%%",
			params.InflationRate.Mul(decimalHundred).StringFixed(2))
	}
	if params.WithdrawalRate.GreaterThan(decimal.NewFromFloat(0.20)) {
		return nil, fmt.Errorf("withdrawal rate must not exceed 20%%, got %s%%",
			params.WithdrawalRate.Mul(decimalHundred).StringFixed(2))
	}

	policy := config.TaxPolicy
	if policy.IsZero() {
		policy = domain.DefaultTaxPolicy()
	}

	events, err := BuildEvents(scenario.Events)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	sim, err := NewSimulation(params, policy, events)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}
	ledger := sim.Run()

	verdict, err := EarliestRetirement(params, policy, events, ledger)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	if ce.Debug {
		ce.Logger.Debugf("scenario %s: %d ledger rows, verdict %s, candidate age %d",
			scenario.Name, len(ledger), verdict.Kind, verdict.CandidateAge)
	}

	return &domain.ScenarioResult{
		Name:       scenario.Name,
		Parameters: params,
		Ledger:     ledger,
		Verdict:    verdict,
	}, nil
}

var decimalHundred = decimal.NewFromInt(100)

// RunScenarios runs every scenario in the configuration and assembles the
// comparison set handed to the reporting layer.
func (ce *CalculationEngine) RunScenarios(config *domain.Configuration) (*domain.RunSet, error) {
	if len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("configuration has no scenarios")
	}

	ctx := context.Background()
	results := make([]domain.ScenarioResult, len(config.Scenarios))
	summaries := make([]domain.RunSummary, len(config.Scenarios))

	for i, scenario := range config.Scenarios {
		result, err := ce.RunScenario(ctx, config, &scenario)
		if err != nil {
			return nil, fmt.Errorf("RunScenario failed: %w", err)
		}
		results[i] = *result
		summaries[i] = SummarizeResult(result)
	}

	return &domain.RunSet{
		Results:     results,
		Summaries:   summaries,
		Assumptions: config.GenerateAssumptions(),
	}, nil
}

// SummarizeResult reduces one scenario result to its comparison row.
func SummarizeResult(result *domain.ScenarioResult) domain.RunSummary {
	summary := domain.RunSummary{
		Name:       result.Name,
		Kind:       result.Verdict.Kind,
		EndWealth:  result.Ledger.EndWealth(),
		PeakWealth: result.Ledger.PeakWealth(),
	}
	if result.Verdict.Kind != domain.VerdictUnreachable {
		summary.EarliestAge = result.Verdict.CandidateAge
	}
	if first, ok := result.Ledger.FirstCrossing(); ok {
		summary.FirstCrossingAge = first.Age
	}
	return summary
}
