package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/firesim/retirement-simulator/internal/domain"
)

// ConsoleVerboseFormatter renders the full report: assumptions, each
// scenario's verdict plus its complete year-by-year ledger, and the closing
// recommendation.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.RunSet) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "RETIREMENT SIMULATION ANALYSIS")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	assumptions := results.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, res := range results.Results {
		writeScenarioSection(&buf, i+1, &res)
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf, "SUMMARY & RECOMMENDATIONS")
		fmt.Fprintln(&buf, "=========================")
		fmt.Fprintf(&buf, "Best scenario: %s\n", rec.ScenarioName)
		fmt.Fprintf(&buf, "Earliest sustainable retirement age: %d\n", rec.EarliestAge)
		fmt.Fprintf(&buf, "Wealth at death: %s (change over retirement: %s)\n",
			FormatCurrency(rec.EndWealth), FormatCurrency(rec.DeltaWealth))
	}

	return buf.Bytes(), nil
}

func writeScenarioSection(buf *bytes.Buffer, index int, res *domain.ScenarioResult) {
	fmt.Fprintf(buf, "SCENARIO %d: %s\n", index, res.Name)
	fmt.Fprintln(buf, strings.Repeat("=", 50))

	for _, line := range VerdictLines(&res.Verdict) {
		fmt.Fprintln(buf, line)
	}
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "KEY FIGURES:")
	if res.Verdict.Kind != domain.VerdictUnreachable {
		fmt.Fprintf(buf, "  Earliest retirement age:  %d\n", res.Verdict.CandidateAge)
	}
	if res.Verdict.Kind == domain.VerdictInsufficient {
		fmt.Fprintf(buf, "  Money runs out at age:    %d\n", res.Verdict.RunsOutAge)
	}
	fmt.Fprintf(buf, "  Peak wealth:              %s\n", FormatCurrency(res.Ledger.PeakWealth()))
	fmt.Fprintf(buf, "  Wealth at death:          %s\n", FormatCurrency(res.Ledger.EndWealth()))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "YEAR-BY-YEAR LEDGER:")
	fmt.Fprintf(buf, "%5s %18s %15s %15s %15s %15s %16s\n",
		"AGE", "WEALTH", "WAGE", "COST OF LIVING", "WITHDRAWAL", "SURPLUS", "THEORETICAL W/D")
	fmt.Fprintln(buf, strings.Repeat("-", 104))
	for _, row := range res.Ledger {
		fmt.Fprintf(buf, "%5d %18s %15s %15s %15s %15s %16s\n",
			row.Age,
			FormatCurrency(row.Wealth),
			optionalCurrency(row.Wage),
			FormatCurrency(row.CostOfLiving),
			optionalCurrency(row.Withdrawal),
			optionalCurrency(row.Surplus),
			optionalCurrency(row.TheoreticalWithdrawal),
		)
	}
	fmt.Fprintln(buf)
	fmt.Fprintln(buf)
}
