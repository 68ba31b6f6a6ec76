package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/firesim/retirement-simulator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.RunSet) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RETIREMENT SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintln(&buf)

	summaries := append([]domain.RunSummary(nil), results.Summaries...)
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	for _, sm := range summaries {
		switch sm.Kind {
		case domain.VerdictUnreachable:
			fmt.Fprintf(&buf, "%s: verdict=%s\n", sm.Name, sm.Kind)
		default:
			fmt.Fprintf(&buf, "%s: verdict=%s earliest=%d first-crossing=%d\n",
				sm.Name, sm.Kind, sm.EarliestAge, sm.FirstCrossingAge)
		}
		fmt.Fprintf(&buf, "  EndWealth=%s PeakWealth=%s\n",
			FormatCurrency(sm.EndWealth), FormatCurrency(sm.PeakWealth))
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (retire at %d, wealth at death %s)\n",
			rec.ScenarioName, rec.EarliestAge, FormatCurrency(rec.EndWealth))
	}
	return buf.Bytes(), nil
}
