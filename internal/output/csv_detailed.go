package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/firesim/retirement-simulator/internal/domain"
)

// CSVDetailedExporter exports every ledger row of every scenario. Phase
// dependent columns are empty outside their phase.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.RunSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Scenario", "Age", "Wealth", "RateOfReturn", "Wage", "CostOfLiving",
		"WithdrawalPostTax", "Surplus", "SurplusPresentValue",
		"TheoreticalWithdrawalPostTax", "TheoreticalSurplus", "TheoreticalSurplusPresentValue",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioResult(nil), results.Results...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		for _, row := range sc.Ledger {
			record := []string{
				sc.Name,
				intToString(row.Age),
				row.Wealth.StringFixed(2),
				row.PortfolioReturn.String(),
				optionalFixed(row.Wage),
				row.CostOfLiving.StringFixed(2),
				optionalFixed(row.Withdrawal),
				optionalFixed(row.Surplus),
				optionalFixed(row.SurplusPresent),
				optionalFixed(row.TheoreticalWithdrawal),
				optionalFixed(row.TheoreticalSurplus),
				optionalFixed(row.TheoreticalSurplusPresent),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}
