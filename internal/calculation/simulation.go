package calculation

import (
	"github.com/firesim/retirement-simulator/internal/domain"
	"github.com/firesim/retirement-simulator/pkg/growth"
	"github.com/shopspring/decimal"
)

// Simulation advances one person's finances year by year from the first
// working age through death, producing one ledger row per age. Each instance
// owns all of its mutable state, including private copies of its events, so
// independent simulations never interfere; construct a fresh one per run.
type Simulation struct {
	params domain.Parameters
	taxes  *TaxCalculator
	events []LifeEvent

	age          int
	wealth       decimal.Decimal
	wage         decimal.Decimal
	costOfLiving decimal.Decimal
	childCost    decimal.Decimal
	collegeCost  decimal.Decimal

	ledger domain.Ledger
	ran    bool
}

// NewSimulation validates the inputs and prepares a run. The event list is
// deep-copied, so callers may reuse the same template events across
// simulations.
func NewSimulation(params domain.Parameters, policy domain.TaxPolicy, events []LifeEvent) (*Simulation, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	return &Simulation{
		params:       params,
		taxes:        NewTaxCalculatorWithPolicy(policy, params.InflationRate),
		events:       CloneEvents(events),
		age:          params.StartWorkingAge,
		wealth:       params.StartingWealth,
		wage:         params.StartingWage,
		costOfLiving: params.CostOfLiving,
		childCost:    params.ChildCost,
		collegeCost:  params.CollegeCost,
		ledger:       make(domain.Ledger, 0, params.SimulatedYears()),
	}, nil
}

// Run executes the complete lifetime: accumulation steps from the first
// working age up to the target retirement age, then decumulation steps
// through the death age inclusive. Calling Run again returns the same
// ledger; no row is ever recomputed.
func (s *Simulation) Run() domain.Ledger {
	if s.ran {
		return s.ledger
	}
	s.ran = true

	for s.age < s.params.TargetRetirementAge {
		s.accumulationStep()
	}
	for s.age <= s.params.DeathAge {
		s.decumulationStep()
	}
	return s.ledger
}

// Ledger returns the rows recorded so far.
func (s *Simulation) Ledger() domain.Ledger {
	return s.ledger
}

// yearsSinceStart is the offset used for present-value discounting and
// bracket scaling.
func (s *Simulation) yearsSinceStart() int {
	return s.age - s.params.StartWorkingAge
}

// applyEventFlows updates every event for the current age and applies its
// net flow to wealth.
func (s *Simulation) applyEventFlows() {
	costs := CostBasis{ChildCost: s.childCost, CollegeCost: s.collegeCost}
	for _, ev := range s.events {
		ev.Update(s.age, costs)
		s.wealth = s.wealth.Add(ev.NetFlow())
	}
}

// postTaxWithdrawal computes this year's pre-tax withdrawal hypothesis and
// its value after long-term capital gains tax.
func (s *Simulation) postTaxWithdrawal() (pre, post decimal.Decimal) {
	pre = s.wealth.Mul(s.params.WithdrawalRate)
	post = pre.Sub(s.taxes.LongTermCapitalGainsTax(pre, s.yearsSinceStart()))
	return pre, post
}

// inflateCosts advances the cost of living and the dependent cost baselines
// by one year of inflation.
func (s *Simulation) inflateCosts() {
	factor := decimalOne.Add(s.params.InflationRate)
	s.costOfLiving = s.costOfLiving.Mul(factor)
	s.childCost = s.childCost.Mul(factor)
	s.collegeCost = s.collegeCost.Mul(factor)
}

// accumulationStep advances one working year. Event flows land first, then
// the year is recorded with a theoretical withdrawal projection, then wealth
// earns the after-tax wage plus portfolio returns, and finally costs inflate
// and the wage takes its raise.
func (s *Simulation) accumulationStep() {
	s.applyEventFlows()

	_, withdrawalPost := s.postTaxWithdrawal()
	years := s.yearsSinceStart()
	surplus := withdrawalPost.Sub(s.costOfLiving)

	wage := s.wage
	s.ledger = append(s.ledger, domain.LedgerRow{
		Age:                       s.age,
		Wealth:                    s.wealth,
		PortfolioReturn:           s.wealth.Mul(s.params.RateOfReturn),
		CostOfLiving:              s.costOfLiving,
		Wage:                      &wage,
		TheoreticalWithdrawal:     decimalPtr(withdrawalPost),
		TheoreticalSurplus:        decimalPtr(surplus),
		TheoreticalSurplusPresent: decimalPtr(growth.PresentValue(surplus, s.params.InflationRate, years)),
	})

	stateTax := s.taxes.StateIncomeTax(s.wage)
	federalTax := s.taxes.FederalIncomeTax(s.wage, years)
	netIncome := s.wage.Sub(stateTax).Sub(federalTax).Sub(s.costOfLiving)
	s.wealth = s.wealth.Add(netIncome).Add(s.wealth.Mul(s.params.RateOfReturn))

	s.inflateCosts()
	s.wage = s.wage.Mul(decimalOne.Add(s.params.YearlyRaise))
	s.age++
}

// decumulationStep advances one retirement year. Event flows land first,
// then the year is recorded with the actual withdrawal, then costs inflate
// before wealth earns returns and pays out the pre-tax withdrawal. Note the
// inflate-before-update order is the reverse of the accumulation step.
func (s *Simulation) decumulationStep() {
	s.applyEventFlows()

	withdrawalPre, withdrawalPost := s.postTaxWithdrawal()
	years := s.yearsSinceStart()
	surplus := withdrawalPost.Sub(s.costOfLiving)

	s.ledger = append(s.ledger, domain.LedgerRow{
		Age:             s.age,
		Wealth:          s.wealth,
		PortfolioReturn: s.wealth.Mul(s.params.RateOfReturn),
		CostOfLiving:    s.costOfLiving,
		Withdrawal:      decimalPtr(withdrawalPost),
		Surplus:         decimalPtr(surplus),
		SurplusPresent:  decimalPtr(growth.PresentValue(surplus, s.params.InflationRate, years)),
	})

	s.inflateCosts()
	s.wealth = s.wealth.Add(s.wealth.Mul(s.params.RateOfReturn)).Sub(withdrawalPre)
	s.age++
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
