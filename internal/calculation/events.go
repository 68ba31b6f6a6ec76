package calculation

import (
	"fmt"

	"github.com/firesim/retirement-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// CostBasis carries the current, already-inflated cost baselines that
// dependent events price against each year.
type CostBasis struct {
	ChildCost   decimal.Decimal
	CollegeCost decimal.Decimal
}

// LifeEvent is a recurring cash flow tied to the simulated person's age.
// Update is called exactly once per simulated year, before that year's
// wealth update; NetFlow then reports the signed amount to apply. Events
// carry internal mutable state, so a simulation must own an independent
// copy of every event it runs.
type LifeEvent interface {
	Update(age int, costs CostBasis)
	NetFlow() decimal.Decimal
	Clone() LifeEvent
}

// FixedWindowFlow contributes a constant signed flow while the simulated age
// is within [StartAge, EndAge). A zero EndAge keeps the flow active for
// life.
type FixedWindowFlow struct {
	StartAge int
	EndAge   int
	Flow     decimal.Decimal

	active bool
}

// Update recomputes the active flag from the current age.
func (f *FixedWindowFlow) Update(age int, _ CostBasis) {
	f.active = age >= f.StartAge && (f.EndAge == 0 || age < f.EndAge)
}

// NetFlow returns the flow while active, zero otherwise.
func (f *FixedWindowFlow) NetFlow() decimal.Decimal {
	if !f.active {
		return decimal.Zero
	}
	return f.Flow
}

// Clone returns an independent copy.
func (f *FixedWindowFlow) Clone() LifeEvent {
	clone := *f
	return &clone
}

// AgingDependent models a child arriving when the simulated person reaches
// StartAge. The dependent costs the child baseline until age 18 and, when
// College is set, the college baseline until age 22; the event stays
// attached for life but contributes nothing after support ends. The
// dependent's own age advances once per simulated year while the event is
// active.
type AgingDependent struct {
	StartAge int
	College  bool

	dependentAge int
	active       bool
	flow         decimal.Decimal
}

// Update recomputes the active flag and this year's support cost, then ages
// the dependent by one year.
func (d *AgingDependent) Update(age int, costs CostBasis) {
	d.active = age >= d.StartAge
	if !d.active {
		d.flow = decimal.Zero
		return
	}

	switch {
	case d.dependentAge < 18:
		d.flow = costs.ChildCost.Neg()
	case d.dependentAge < 22 && d.College:
		d.flow = costs.CollegeCost.Neg()
	default:
		d.flow = decimal.Zero
	}
	d.dependentAge++
}

// NetFlow returns this year's support cost, zero before the dependent
// arrives or after support ends.
func (d *AgingDependent) NetFlow() decimal.Decimal {
	if !d.active {
		return decimal.Zero
	}
	return d.flow
}

// Clone returns an independent copy, including the dependent-age counter.
func (d *AgingDependent) Clone() LifeEvent {
	clone := *d
	return &clone
}

// BuildEvents constructs runtime events from their configuration specs.
func BuildEvents(specs []domain.EventSpec) ([]LifeEvent, error) {
	events := make([]LifeEvent, 0, len(specs))
	for i := range specs {
		spec := specs[i]
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}

		endAge := spec.EndAge
		if spec.Duration > 0 {
			endAge = spec.StartAge + spec.Duration
		}

		switch spec.Type {
		case domain.EventTypeCashFlow:
			events = append(events, &FixedWindowFlow{
				StartAge: spec.StartAge,
				EndAge:   endAge,
				Flow:     spec.NetFlow,
			})
		case domain.EventTypeDependent:
			events = append(events, &AgingDependent{
				StartAge: spec.StartAge,
				College:  spec.College,
			})
		}
	}
	return events, nil
}

// CloneEvents deep-copies an event list so two simulations never share
// event state.
func CloneEvents(events []LifeEvent) []LifeEvent {
	cloned := make([]LifeEvent, len(events))
	for i, ev := range events {
		cloned[i] = ev.Clone()
	}
	return cloned
}
