package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	app := newApp()

	rootCmd := &cobra.Command{
		Use:   "firesim",
		Short: "Deterministic earliest-retirement simulator",
		Long: `firesim plays each scenario forward one year at a time, from the first
working year through the final simulated year, and reports the earliest
age at which retiring is sustainable for the rest of the projection.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.setup()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", "", "scenario configuration file (YAML)")
	pf.StringP("format", "f", "console", "report format (see 'firesim formats')")
	pf.StringP("output", "o", "", "write the report to this file instead of stdout")
	pf.BoolP("verbose", "v", false, "log engine progress to stderr")
	pf.Bool("debug", false, "log per-scenario run detail to stderr")
	for _, name := range []string{"config", "format", "output", "verbose", "debug"} {
		app.bindFlag(name, pf.Lookup(name))
	}

	rootCmd.AddCommand(simulateCmd(app))
	rootCmd.AddCommand(searchCmd(app))
	rootCmd.AddCommand(compareCmd(app))
	rootCmd.AddCommand(serveCmd(app))
	rootCmd.AddCommand(exampleConfigCmd(app))
	rootCmd.AddCommand(formatsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func simulateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "simulate",
		Short: "Run every scenario and render a report",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.runSimulate()
		},
	}
}

func searchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search",
		Short: "Print the earliest-retirement verdict for each scenario",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.runSearch()
		},
	}
}

func compareCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Rank scenarios side by side and recommend one",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.runCompare()
		},
	}
}

func serveCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP simulation API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.runServe()
		},
	}
	cmd.Flags().String("listen", ":8080", "listen address for the HTTP API")
	app.bindFlag("listen", cmd.Flags().Lookup("listen"))
	return cmd
}

func exampleConfigCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [file]",
		Short: "Write an example scenario configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			filename := "example_config.yaml"
			if len(args) == 1 {
				filename = args[0]
			}
			return app.runExampleConfig(filename)
		},
	}
}

func formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List available report formats",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runFormats()
		},
	}
}
