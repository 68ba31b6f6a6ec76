package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/firesim/retirement-simulator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.RunSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Verdict", "EarliestRetirementAge", "RunsOutAge", "StartWealth", "EndWealth", "DeltaWealth", "Growing", "PeakWealth", "WealthAtDeath"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioResult(nil), results.Results...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		row := []string{
			sc.Name,
			sc.Verdict.Kind.String(),
			intToString(sc.Verdict.CandidateAge),
			intToString(sc.Verdict.RunsOutAge),
			sc.Verdict.StartWealth.StringFixed(2),
			sc.Verdict.EndWealth.StringFixed(2),
			sc.Verdict.DeltaWealth.StringFixed(2),
			boolToString(sc.Verdict.Growing),
			sc.Ledger.PeakWealth().StringFixed(2),
			sc.Ledger.EndWealth().StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}
