package calculation

import (
	"fmt"

	"github.com/firesim/retirement-simulator/internal/domain"
)

// EarliestRetirement scans a completed base run for the first year any
// post-tax withdrawal, actual or theoretical, covers the cost of living.
// The candidate age is floored to WorkTillAtLeast when set. Because the base
// ledger's retirement-phase numbers assume the original target retirement
// age, the candidate is then validated with a fresh simulation that actually
// retires at the candidate age; the verdict's runs-out age and wealth
// figures come from that validation run.
//
// The events argument must be the pristine template list, not the mutated
// events of the base run.
func EarliestRetirement(params domain.Parameters, policy domain.TaxPolicy, events []LifeEvent, base domain.Ledger) (domain.Verdict, error) {
	verdict := domain.Verdict{
		Kind:           domain.VerdictUnreachable,
		WithdrawalRate: params.WithdrawalRate,
		DeathAge:       params.DeathAge,
	}

	first, ok := base.FirstCrossing()
	if !ok {
		return verdict, nil
	}

	candidate := first.Age
	if params.WorkTillAtLeast != 0 && candidate < params.WorkTillAtLeast {
		candidate = params.WorkTillAtLeast
	}
	// A crossing on the very first working year would make the validation
	// run degenerate; the earliest supported retirement is one year in.
	if candidate <= params.StartWorkingAge {
		candidate = params.StartWorkingAge + 1
	}
	verdict.CandidateAge = candidate

	validationParams := params
	validationParams.TargetRetirementAge = candidate
	sim, err := NewSimulation(validationParams, policy, events)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("validation run: %w", err)
	}
	ledger := sim.Run()

	vFirst, okFirst := ledger.FirstCrossing()
	vLast, okLast := ledger.LastCrossing()
	if !okFirst || !okLast {
		// Retiring at the candidate age never covers the cost of living at
		// all, so the money is gone the moment work stops.
		verdict.Kind = domain.VerdictInsufficient
		verdict.RunsOutAge = candidate
		return verdict, nil
	}

	verdict.RunsOutAge = vLast.Age
	if vLast.Age < params.DeathAge {
		verdict.Kind = domain.VerdictInsufficient
		return verdict, nil
	}

	verdict.Kind = domain.VerdictSustainable
	verdict.StartWealth = vFirst.Wealth
	verdict.EndWealth = vLast.Wealth
	verdict.DeltaWealth = vLast.Wealth.Sub(vFirst.Wealth)
	verdict.Growing = vLast.Wealth.GreaterThan(vFirst.Wealth)
	return verdict, nil
}
