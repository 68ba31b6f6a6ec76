package output

import (
	"sort"

	"github.com/firesim/retirement-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName string
	EarliestAge  int
	EndWealth    decimal.Decimal
	DeltaWealth  decimal.Decimal
}

// AnalyzeScenarios determines the scenario with the earliest sustainable
// retirement age, breaking ties by end-of-life wealth. Scenarios that never
// sustain retirement are not considered.
func AnalyzeScenarios(results *domain.RunSet) Recommendation {
	type ranked struct {
		name  string
		age   int
		end   decimal.Decimal
		delta decimal.Decimal
	}
	var ranks []ranked
	for _, res := range results.Results {
		if !res.Verdict.Sustainable() {
			continue
		}
		ranks = append(ranks, ranked{res.Name, res.Verdict.CandidateAge, res.Verdict.EndWealth, res.Verdict.DeltaWealth})
	}
	if len(ranks) == 0 {
		return Recommendation{}
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].age != ranks[j].age {
			return ranks[i].age < ranks[j].age
		}
		return ranks[i].end.GreaterThan(ranks[j].end)
	})
	best := ranks[0]
	return Recommendation{ScenarioName: best.name, EarliestAge: best.age, EndWealth: best.end, DeltaWealth: best.delta}
}
