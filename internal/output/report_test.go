package output_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	stddec "github.com/shopspring/decimal"

	"github.com/firesim/retirement-simulator/internal/config"
	"github.com/firesim/retirement-simulator/internal/domain"
	"github.com/firesim/retirement-simulator/internal/output"
)

func reportRunSet() *domain.RunSet {
	wage := stddec.NewFromInt(80000)
	theoretical := stddec.NewFromInt(20000)
	shortfall := stddec.NewFromInt(-20000)
	withdrawal := stddec.NewFromInt(52000)
	surplus := stddec.NewFromInt(12000)

	result := domain.ScenarioResult{
		Name:       "Baseline",
		Parameters: domain.DefaultParameters(),
		Ledger: domain.Ledger{
			{
				Age:                       22,
				Wealth:                    stddec.NewFromInt(-30000),
				PortfolioReturn:           stddec.NewFromInt(-2100),
				CostOfLiving:              stddec.NewFromInt(40000),
				Wage:                      &wage,
				TheoreticalWithdrawal:     &theoretical,
				TheoreticalSurplus:        &shortfall,
				TheoreticalSurplusPresent: &shortfall,
			},
			{
				Age:             64,
				Wealth:          stddec.NewFromInt(1300000),
				PortfolioReturn: stddec.NewFromInt(91000),
				CostOfLiving:    stddec.NewFromInt(40000),
				Withdrawal:      &withdrawal,
				Surplus:         &surplus,
				SurplusPresent:  &surplus,
			},
		},
		Verdict: domain.Verdict{
			Kind:           domain.VerdictSustainable,
			CandidateAge:   47,
			RunsOutAge:     100,
			StartWealth:    stddec.NewFromInt(1300000),
			EndWealth:      stddec.NewFromInt(1500000),
			DeltaWealth:    stddec.NewFromInt(200000),
			Growing:        true,
			WithdrawalRate: stddec.NewFromFloat(0.04),
			DeathAge:       100,
		},
	}

	return &domain.RunSet{
		Results: []domain.ScenarioResult{result},
		Summaries: []domain.RunSummary{
			{
				Name:             "Baseline",
				Kind:             domain.VerdictSustainable,
				EarliestAge:      47,
				FirstCrossingAge: 47,
				EndWealth:        stddec.NewFromInt(1500000),
				PeakWealth:       stddec.NewFromInt(1600000),
			},
		},
		Assumptions: []string{"Inflation rate: 3.00%"},
	}
}

// inReportDir moves the test into a scratch working directory because
// GenerateReport writes relative to the current one.
func inReportDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
	return dir
}

func pinReportClock(t *testing.T) {
	t.Helper()
	output.SetNowFunc(func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) })
	t.Cleanup(func() { output.SetNowFunc(time.Now) })
}

func TestFormatters(t *testing.T) {
	if got := output.FormatCurrency(stddec.NewFromFloat(123.45)); got != "$123.45" {
		t.Fatalf("FormatCurrency = %q", got)
	}
	if got := output.FormatCurrency(stddec.NewFromInt(1300000)); got != "$1,300,000.00" {
		t.Fatalf("FormatCurrency = %q", got)
	}
	if got := output.FormatPercentage(stddec.NewFromFloat(12.34)); got != "12.34%" {
		t.Fatalf("FormatPercentage = %q", got)
	}
}

func TestSaveConfigurationRoundTrip(t *testing.T) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := output.SaveConfiguration(cfg, path); err != nil {
		t.Fatalf("SaveConfiguration error: %v", err)
	}

	loaded, err := parser.LoadFromFile(path)
	if err != nil {
		t.Fatalf("reload saved configuration: %v", err)
	}
	if len(loaded.Scenarios) != len(cfg.Scenarios) {
		t.Fatalf("reloaded %d scenarios, want %d", len(loaded.Scenarios), len(cfg.Scenarios))
	}
	for i := range cfg.Scenarios {
		if loaded.Scenarios[i].Name != cfg.Scenarios[i].Name {
			t.Errorf("scenario %d name = %q, want %q", i, loaded.Scenarios[i].Name, cfg.Scenarios[i].Name)
		}
		if !loaded.Scenarios[i].Parameters.StartingWealth.Equal(cfg.Scenarios[i].Parameters.StartingWealth) {
			t.Errorf("scenario %d starting wealth drifted on round trip", i)
		}
	}
}

func TestGenerateReportJSONAndCSV(t *testing.T) {
	dir := inReportDir(t)
	pinReportClock(t)
	rs := reportRunSet()

	if err := output.GenerateReport(rs, "json"); err != nil {
		t.Fatalf("GenerateReport json error: %v", err)
	}
	if err := output.GenerateReport(rs, "csv"); err != nil {
		t.Fatalf("GenerateReport csv error: %v", err)
	}

	for _, name := range []string{
		"retirement_report_20250102_030405.json",
		"retirement_report_20250102_030405.csv",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected report file %s: %v", name, err)
		}
	}
}

func TestGenerateReportAll(t *testing.T) {
	dir := inReportDir(t)
	pinReportClock(t)

	if err := output.GenerateReport(reportRunSet(), "all"); err != nil {
		t.Fatalf("GenerateReport all error: %v", err)
	}

	for _, name := range []string{
		"retirement_report_20250102_030405.txt",
		"retirement_report_20250102_030405.csv",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected report file %s: %v", name, err)
		}
	}
}

func TestGenerateReportRejectsUnknownFormat(t *testing.T) {
	err := output.GenerateReport(reportRunSet(), "parchment")
	if !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}
