package config

import (
	"fmt"
	"os"

	"github.com/firesim/retirement-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.LoadFromBytes(data)
}

// LoadFromBytes parses and validates configuration held in memory. The HTTP
// server feeds request bodies through here.
func (ip *InputParser) LoadFromBytes(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	// An omitted tax_policy section is allowed; the engine falls back to the
	// default bracket tables. A present section must be internally valid.
	if !config.TaxPolicy.IsZero() {
		if err := config.TaxPolicy.Validate(); err != nil {
			return fmt.Errorf("tax policy validation failed: %w", err)
		}
	}

	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]struct{}, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(i, &scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if _, dup := seen[scenario.Name]; dup {
			return fmt.Errorf("duplicate scenario name %q", scenario.Name)
		}
		seen[scenario.Name] = struct{}{}
	}

	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(_ int, scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}

	if err := scenario.Parameters.Validate(); err != nil {
		return fmt.Errorf("parameters validation failed: %w", err)
	}
	if err := ip.validateParameterBands(&scenario.Parameters); err != nil {
		return fmt.Errorf("parameters validation failed: %w", err)
	}

	for j, event := range scenario.Events {
		if err := event.Validate(); err != nil {
			return fmt.Errorf("event %d validation failed: %w", j, err)
		}
	}

	return nil
}

// validateParameterBands applies sanity bounds on top of the structural
// checks in Parameters.Validate. The calculation engine enforces the same
// inflation and withdrawal bands before running.
func (ip *InputParser) validateParameterBands(params *domain.Parameters) error {
	if params.InflationRate.LessThan(decimal.NewFromFloat(-0.10)) {
		return fmt.Errorf("inflation rate cannot be less than -10%% (extreme deflation)")
	}
	if params.InflationRate.GreaterThan(decimal.NewFromFloat(0.20)) {
		return fmt.Errorf("inflation rate cannot be greater than 20%% (hyperinflation)")
	}
	if params.RateOfReturn.GreaterThan(decimal.NewFromFloat(1.0)) {
		return fmt.Errorf("rate of return cannot be greater than 100%%")
	}
	if params.YearlyRaise.LessThan(decimal.NewFromFloat(-1.0)) {
		return fmt.Errorf("yearly raise cannot be less than -100%%")
	}
	if params.YearlyRaise.GreaterThan(decimal.NewFromFloat(1.0)) {
		return fmt.Errorf("yearly raise cannot be greater than 100%%")
	}
	if params.WithdrawalRate.GreaterThan(decimal.NewFromFloat(0.2)) {
		return fmt.Errorf("withdrawal rate must be between 0 and 20%%")
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	baseline := domain.Parameters{
		StartingWealth:      decimal.NewFromInt(-30000),
		RateOfReturn:        decimal.NewFromFloat(0.07),
		CostOfLiving:        decimal.NewFromInt(40000),
		InflationRate:       decimal.NewFromFloat(0.03),
		StartingWage:        decimal.NewFromInt(80000),
		YearlyRaise:         decimal.NewFromFloat(0.027),
		WithdrawalRate:      decimal.NewFromFloat(0.04),
		StartWorkingAge:     22,
		TargetRetirementAge: 64,
		WorkTillAtLeast:     35,
		DeathAge:            100,
		ChildCost:           decimal.NewFromInt(10000),
		CollegeCost:         decimal.NewFromInt(40000),
	}

	withChild := baseline
	withInheritance := baseline
	withInheritance.WorkTillAtLeast = 40

	return &domain.Configuration{
		TaxPolicy: domain.DefaultTaxPolicy(),
		Scenarios: []domain.Scenario{
			{
				Name:       "Baseline",
				Parameters: baseline,
			},
			{
				Name:       "Child at 27",
				Parameters: withChild,
				Events: []domain.EventSpec{
					{
						Type:     domain.EventTypeDependent,
						StartAge: 27,
						College:  true,
					},
				},
			},
			{
				Name:       "Inheritance at 45",
				Parameters: withInheritance,
				Events: []domain.EventSpec{
					{
						Type:     domain.EventTypeCashFlow,
						StartAge: 45,
						Duration: 1,
						NetFlow:  decimal.NewFromInt(150000),
					},
				},
			},
		},
	}
}
