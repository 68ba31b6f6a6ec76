package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/firesim/retirement-simulator/internal/calculation"
	"github.com/firesim/retirement-simulator/internal/config"
	"github.com/firesim/retirement-simulator/internal/domain"
	"github.com/firesim/retirement-simulator/internal/output"
	"github.com/firesim/retirement-simulator/internal/server"
)

// app carries the pieces shared by every subcommand: the resolved settings
// (flags beat FIRESIM_* environment variables beat ~/.firesim.yaml beat
// defaults, which is viper's precedence once the flags are bound) and the
// process logger.
type app struct {
	v      *viper.Viper
	logger *zap.Logger
	sugar  *zap.SugaredLogger
}

func newApp() *app {
	v := viper.New()
	v.SetEnvPrefix("FIRESIM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("format", "console")
	v.SetDefault("listen", ":8080")
	return &app{v: v}
}

func (a *app) bindFlag(key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	if err := a.v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// setup runs after flag parsing and before any subcommand. It layers in the
// optional ~/.firesim.yaml settings file and builds the logger.
func (a *app) setup() error {
	if home, err := os.UserHomeDir(); err == nil {
		settings := filepath.Join(home, ".firesim.yaml")
		if _, err := os.Stat(settings); err == nil {
			a.v.SetConfigFile(settings)
			if err := a.v.ReadInConfig(); err != nil {
				return fmt.Errorf("reading %s: %w", settings, err)
			}
		}
	}

	logger, err := newLogger(a.v.GetBool("debug"))
	if err != nil {
		return err
	}
	a.logger = logger
	a.sugar = logger.Sugar()
	return nil
}

// loadConfiguration reads the scenario file named by --config (or
// FIRESIM_CONFIG). Without one it falls back to the built-in example
// scenarios so the tool works out of the box.
func (a *app) loadConfiguration() (*domain.Configuration, error) {
	parser := config.NewInputParser()
	path := a.v.GetString("config")
	if path == "" {
		a.logger.Info("no configuration file given, using built-in example scenarios")
		return parser.CreateExampleConfiguration(), nil
	}
	return parser.LoadFromFile(path)
}

func (a *app) newEngine() *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	if a.v.GetBool("verbose") || a.v.GetBool("debug") {
		engine.SetLogger(engineLogger{s: a.sugar})
	}
	engine.Debug = a.v.GetBool("debug")
	return engine
}

func (a *app) run() (*domain.RunSet, error) {
	cfg, err := a.loadConfiguration()
	if err != nil {
		return nil, err
	}
	return a.newEngine().RunScenarios(cfg)
}

func (a *app) runSimulate() error {
	runSet, err := a.run()
	if err != nil {
		return err
	}

	name := output.NormalizeFormatName(a.v.GetString("format"))
	formatter := output.GetFormatterByName(name)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %s)",
			a.v.GetString("format"), strings.Join(output.AvailableFormatterNames(), ", "))
	}

	data, err := formatter.Format(runSet)
	if err != nil {
		return fmt.Errorf("rendering %s report: %w", name, err)
	}

	if path := a.v.GetString("output"); path != "" {
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		a.logger.Info("report written", zap.String("format", name), zap.String("path", path))
		return nil
	}
	_, err = os.Stdout.Write(data)
	return err
}

func (a *app) runSearch() error {
	runSet, err := a.run()
	if err != nil {
		return err
	}

	for i := range runSet.Results {
		res := &runSet.Results[i]
		fmt.Printf("%s:\n", res.Name)
		for _, line := range output.VerdictLines(&res.Verdict) {
			fmt.Printf("  %s\n", line)
		}
	}
	return nil
}

func (a *app) runCompare() error {
	runSet, err := a.run()
	if err != nil {
		return err
	}

	fmt.Printf("%-28s %-13s %9s %14s %18s %18s\n",
		"Scenario", "Verdict", "Earliest", "FirstCrossing", "EndWealth", "PeakWealth")
	for _, s := range runSet.Summaries {
		earliest := "-"
		if s.Kind != domain.VerdictUnreachable {
			earliest = fmt.Sprintf("%d", s.EarliestAge)
		}
		crossing := "-"
		if s.FirstCrossingAge > 0 {
			crossing = fmt.Sprintf("%d", s.FirstCrossingAge)
		}
		fmt.Printf("%-28s %-13s %9s %14s %18s %18s\n",
			s.Name, s.Kind.String(), earliest, crossing,
			output.FormatCurrency(s.EndWealth), output.FormatCurrency(s.PeakWealth))
	}

	if rec := output.AnalyzeScenarios(runSet); rec.ScenarioName != "" {
		fmt.Printf("\nRecommended: %s (retire at %d, ends with %s)\n",
			rec.ScenarioName, rec.EarliestAge, output.FormatCurrency(rec.EndWealth))
	} else {
		fmt.Println("\nNo scenario sustains retirement through the full projection.")
	}
	return nil
}

func (a *app) runServe() error {
	addr := a.v.GetString("listen")
	srv := server.New(a.logger)
	a.logger.Info("starting HTTP API", zap.String("addr", addr))
	return srv.ListenAndServe(addr)
}

func (a *app) runExampleConfig(filename string) error {
	cfg := config.NewInputParser().CreateExampleConfiguration()
	if err := output.SaveConfiguration(cfg, filename); err != nil {
		return err
	}
	fmt.Printf("Example configuration written to %s\n", filename)
	return nil
}

func runFormats() error {
	fmt.Println("Formats:")
	for _, name := range output.AvailableFormatterNames() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("Aliases:")
	for _, alias := range output.AvailableFormatAliases() {
		fmt.Printf("  %s\n", alias)
	}
	return nil
}
