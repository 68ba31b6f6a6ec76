package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidParameter marks parameter and configuration validation failures.
// Callers can match it with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// Parameters holds the starting conditions for a single simulated lifetime.
// Monetary amounts are currency per year; rates are decimal fractions
// (0.03 = 3%). StartingWealth may be negative to represent debt.
type Parameters struct {
	StartingWealth decimal.Decimal `yaml:"starting_wealth" json:"starting_wealth"`
	RateOfReturn   decimal.Decimal `yaml:"rate_of_return" json:"rate_of_return"`
	CostOfLiving   decimal.Decimal `yaml:"cost_of_living" json:"cost_of_living"`
	InflationRate  decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	StartingWage   decimal.Decimal `yaml:"starting_wage" json:"starting_wage"`
	YearlyRaise    decimal.Decimal `yaml:"yearly_raise" json:"yearly_raise"`
	WithdrawalRate decimal.Decimal `yaml:"withdrawal_rate" json:"withdrawal_rate"`

	StartWorkingAge     int `yaml:"start_working_age" json:"start_working_age"`
	TargetRetirementAge int `yaml:"target_retirement_age" json:"target_retirement_age"`
	WorkTillAtLeast     int `yaml:"work_till_at_least,omitempty" json:"work_till_at_least,omitempty"` // 0 = no floor
	DeathAge            int `yaml:"death_age" json:"death_age"`

	// Auxiliary cost baselines consumed by dependent events. Both inflate
	// yearly alongside the cost of living.
	ChildCost   decimal.Decimal `yaml:"child_cost,omitempty" json:"child_cost,omitempty"`
	CollegeCost decimal.Decimal `yaml:"college_cost,omitempty" json:"college_cost,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for Parameters so that
// monetary fields can be written as plain numbers or strings.
func (p *Parameters) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		StartingWealth      string `yaml:"starting_wealth"`
		RateOfReturn        string `yaml:"rate_of_return"`
		CostOfLiving        string `yaml:"cost_of_living"`
		InflationRate       string `yaml:"inflation_rate"`
		StartingWage        string `yaml:"starting_wage"`
		YearlyRaise         string `yaml:"yearly_raise"`
		WithdrawalRate      string `yaml:"withdrawal_rate"`
		StartWorkingAge     int    `yaml:"start_working_age"`
		TargetRetirementAge int    `yaml:"target_retirement_age"`
		WorkTillAtLeast     int    `yaml:"work_till_at_least"`
		DeathAge            int    `yaml:"death_age"`
		ChildCost           string `yaml:"child_cost"`
		CollegeCost         string `yaml:"college_cost"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	p.StartWorkingAge = aux.StartWorkingAge
	p.TargetRetirementAge = aux.TargetRetirementAge
	p.WorkTillAtLeast = aux.WorkTillAtLeast
	p.DeathAge = aux.DeathAge

	fields := []struct {
		raw  string
		dst  *decimal.Decimal
		name string
	}{
		{aux.StartingWealth, &p.StartingWealth, "starting_wealth"},
		{aux.RateOfReturn, &p.RateOfReturn, "rate_of_return"},
		{aux.CostOfLiving, &p.CostOfLiving, "cost_of_living"},
		{aux.InflationRate, &p.InflationRate, "inflation_rate"},
		{aux.StartingWage, &p.StartingWage, "starting_wage"},
		{aux.YearlyRaise, &p.YearlyRaise, "yearly_raise"},
		{aux.WithdrawalRate, &p.WithdrawalRate, "withdrawal_rate"},
		{aux.ChildCost, &p.ChildCost, "child_cost"},
		{aux.CollegeCost, &p.CollegeCost, "college_cost"},
	}
	for _, f := range fields {
		if f.raw == "" {
			*f.dst = decimal.Zero
			continue
		}
		val, err := decimal.NewFromString(f.raw)
		if err != nil {
			return fmt.Errorf("field %s: %w", f.name, err)
		}
		*f.dst = val
	}

	return nil
}

// DefaultParameters returns the documented default starting conditions: a
// graduate starting work at 22 with student debt, conservative return and
// raise assumptions, and the common 4% withdrawal rule.
func DefaultParameters() Parameters {
	return Parameters{
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
}

// Validate checks the invariants every simulation construction requires.
// Violations are wrapped with ErrInvalidParameter and never silently clamped.
func (p *Parameters) Validate() error {
	if p.StartWorkingAge < 0 {
		return fmt.Errorf("%w: start working age cannot be negative", ErrInvalidParameter)
	}
	if p.DeathAge < 0 {
		return fmt.Errorf("%w: death age cannot be negative", ErrInvalidParameter)
	}
	if p.TargetRetirementAge <= p.StartWorkingAge {
		return fmt.Errorf("%w: target retirement age (%d) must be after start working age (%d)",
			ErrInvalidParameter, p.TargetRetirementAge, p.StartWorkingAge)
	}
	if p.DeathAge < p.TargetRetirementAge {
		return fmt.Errorf("%w: death age (%d) cannot precede target retirement age (%d)",
			ErrInvalidParameter, p.DeathAge, p.TargetRetirementAge)
	}
	if p.WorkTillAtLeast != 0 && (p.WorkTillAtLeast <= p.StartWorkingAge || p.WorkTillAtLeast > p.DeathAge) {
		return fmt.Errorf("%w: work_till_at_least (%d) must lie between start working age and death age",
			ErrInvalidParameter, p.WorkTillAtLeast)
	}
	if p.InflationRate.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return fmt.Errorf("%w: inflation rate must be greater than -100%%", ErrInvalidParameter)
	}
	if p.RateOfReturn.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return fmt.Errorf("%w: rate of return must be greater than -100%%", ErrInvalidParameter)
	}
	if p.WithdrawalRate.IsNegative() {
		return fmt.Errorf("%w: withdrawal rate cannot be negative", ErrInvalidParameter)
	}
	if p.CostOfLiving.IsNegative() {
		return fmt.Errorf("%w: cost of living cannot be negative", ErrInvalidParameter)
	}
	if p.StartingWage.IsNegative() {
		return fmt.Errorf("%w: starting wage cannot be negative", ErrInvalidParameter)
	}
	if p.ChildCost.IsNegative() || p.CollegeCost.IsNegative() {
		return fmt.Errorf("%w: dependent cost baselines cannot be negative", ErrInvalidParameter)
	}
	return nil
}

// SimulatedYears returns the number of ledger rows a run will produce.
func (p *Parameters) SimulatedYears() int {
	return p.DeathAge - p.StartWorkingAge + 1
}

// Event type tags understood by the simulation layer.
const (
	EventTypeCashFlow  = "cash_flow"
	EventTypeDependent = "dependent"
)

// EventSpec describes one life event in configuration form. The simulation
// layer builds a fresh runtime event from each spec per run, so specs carry
// no mutable state.
type EventSpec struct {
	Type     string          `yaml:"type" json:"type"`
	StartAge int             `yaml:"start_age" json:"start_age"`
	EndAge   int             `yaml:"end_age,omitempty" json:"end_age,omitempty"`   // 0 = open-ended
	Duration int             `yaml:"duration,omitempty" json:"duration,omitempty"` // years; alternative to end_age
	NetFlow  decimal.Decimal `yaml:"net_flow,omitempty" json:"net_flow,omitempty"` // cash_flow only, signed
	College  bool            `yaml:"college,omitempty" json:"college,omitempty"`   // dependent only
}

// UnmarshalYAML implements custom YAML unmarshaling for EventSpec.
func (es *EventSpec) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		Type     string `yaml:"type"`
		StartAge int    `yaml:"start_age"`
		EndAge   int    `yaml:"end_age"`
		Duration int    `yaml:"duration"`
		NetFlow  string `yaml:"net_flow"`
		College  bool   `yaml:"college"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	es.Type = aux.Type
	es.StartAge = aux.StartAge
	es.EndAge = aux.EndAge
	es.Duration = aux.Duration
	es.College = aux.College

	if aux.NetFlow == "" {
		es.NetFlow = decimal.Zero
		return nil
	}
	val, err := decimal.NewFromString(aux.NetFlow)
	if err != nil {
		return fmt.Errorf("field net_flow: %w", err)
	}
	es.NetFlow = val
	return nil
}

// Validate checks a single event spec.
func (es *EventSpec) Validate() error {
	switch es.Type {
	case EventTypeCashFlow, EventTypeDependent:
	default:
		return fmt.Errorf("%w: unknown event type %q", ErrInvalidParameter, es.Type)
	}
	if es.StartAge < 0 {
		return fmt.Errorf("%w: event start age cannot be negative", ErrInvalidParameter)
	}
	if es.EndAge != 0 && es.Duration != 0 {
		return fmt.Errorf("%w: specify either end_age or duration, not both", ErrInvalidParameter)
	}
	if es.EndAge != 0 && es.EndAge <= es.StartAge {
		return fmt.Errorf("%w: event end age must be after start age", ErrInvalidParameter)
	}
	if es.Duration < 0 {
		return fmt.Errorf("%w: event duration cannot be negative", ErrInvalidParameter)
	}
	if es.Type == EventTypeDependent {
		if !es.NetFlow.IsZero() {
			return fmt.Errorf("%w: dependent events derive their flow from cost baselines; net_flow must be omitted", ErrInvalidParameter)
		}
		if es.EndAge != 0 || es.Duration != 0 {
			return fmt.Errorf("%w: dependent events are open-ended; end_age and duration must be omitted", ErrInvalidParameter)
		}
	}
	return nil
}

// Scenario names one set of parameters plus its life events.
type Scenario struct {
	Name       string      `yaml:"name" json:"name"`
	Parameters Parameters  `yaml:"parameters" json:"parameters"`
	Events     []EventSpec `yaml:"events,omitempty" json:"events,omitempty"`
}

// Configuration represents the complete input configuration.
type Configuration struct {
	TaxPolicy TaxPolicy  `yaml:"tax_policy,omitempty" json:"tax_policy,omitempty"`
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}
