package domain

import (
	"github.com/shopspring/decimal"
)

// ScenarioResult bundles one scenario's resolved inputs with the ledger and
// verdict its run produced.
type ScenarioResult struct {
	Name       string     `json:"name"`
	Parameters Parameters `json:"parameters"`
	Ledger     Ledger     `json:"ledger"`
	Verdict    Verdict    `json:"verdict"`
}

// RunSummary is one comparison row across scenarios.
type RunSummary struct {
	Name             string          `json:"name"`
	Kind             VerdictKind     `json:"kind"`
	EarliestAge      int             `json:"earliest_age,omitempty"`
	FirstCrossingAge int             `json:"first_crossing_age,omitempty"`
	EndWealth        decimal.Decimal `json:"end_wealth"`
	PeakWealth       decimal.Decimal `json:"peak_wealth"`
}

// RunSet is the complete output of a run, handed to the reporting layer.
type RunSet struct {
	Results     []ScenarioResult `json:"results"`
	Summaries   []RunSummary     `json:"summaries,omitempty"`
	Assumptions []string         `json:"assumptions,omitempty"`
}

// ResultByName returns the named scenario result.
func (rs *RunSet) ResultByName(name string) (*ScenarioResult, bool) {
	for i := range rs.Results {
		if rs.Results[i].Name == name {
			return &rs.Results[i], true
		}
	}
	return nil, false
}
