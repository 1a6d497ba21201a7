package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rideshare-sim/rideshare-sim/sim"
	"github.com/rideshare-sim/rideshare-sim/sim/monitor"
	"github.com/rideshare-sim/rideshare-sim/sim/scenario"
)

var (
	// CLI flags for the run subcommand
	scenarioPath string // Path to the scenario event list
	horizon      int64  // Maximum timestamp to execute (in ticks)
	logLevel     string // Log verbosity level
	reportPath   string // Optional path for the JSON run report
	printEvents  bool   // Render every notification after the run
	configPath   string // Optional rideshare-sim.yaml overriding flag defaults
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "rideshare-sim",
	Short: "Discrete-event simulator for a ride-sharing marketplace",
}

// runCmd replays a scenario file through the simulator
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scenario through the simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Flag defaults can be overridden by .env / config file / RIDESIM_*
		// env vars; an explicitly set flag beats all of them.
		cfg, err := LoadSimConfig(configPath)
		if err != nil {
			logrus.Fatalf("Unable to load configuration: %v", err)
		}
		if !cmd.Flags().Changed("horizon") {
			horizon = cfg.Horizon
		}
		if !cmd.Flags().Changed("log") {
			logLevel = cfg.LogLevel
		}
		if !cmd.Flags().Changed("report") {
			reportPath = cfg.Report
		}
		if !cmd.Flags().Changed("print-events") {
			printEvents = cfg.PrintEvents
		}

		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if scenarioPath == "" {
			logrus.Fatalf("No scenario file provided. Exiting simulation.")
		}
		specs, err := scenario.ParseFile(scenarioPath)
		if err != nil {
			logrus.Fatalf("Unable to parse scenario: %v", err)
		}

		logrus.Infof("Starting simulation: %d initial events, horizon=%d ticks", len(specs), horizon)
		startTime := time.Now()

		mon := monitor.NewMonitor()
		s := sim.NewSimulator(horizon, mon)
		for _, e := range scenario.Build(specs) {
			s.Schedule(e)
		}
		s.Run()

		if printEvents {
			if err := mon.Render(os.Stdout); err != nil {
				logrus.Fatalf("Unable to render events: %v", err)
			}
		}

		report := monitor.NewReport(s, mon)
		report.Render(os.Stdout)
		if reportPath != "" {
			if err := report.WriteJSON(reportPath); err != nil {
				logrus.Fatalf("Unable to write report: %v", err)
			}
			logrus.Infof("Report written to %s", reportPath)
		}

		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&scenarioPath, "events", "", "Path to the scenario event list")
	runCmd.Flags().Int64Var(&horizon, "horizon", sim.HorizonUnbounded, "Maximum timestamp to execute, -1 for unbounded (in ticks)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&reportPath, "report", "", "Write the JSON run report to this path")
	runCmd.Flags().BoolVar(&printEvents, "print-events", false, "Render every notification after the run")
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to rideshare-sim.yaml (default: search working directory)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
