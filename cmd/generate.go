package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rideshare-sim/rideshare-sim/sim/scenario"
)

var (
	// CLI flags for the generate subcommand
	genOut       string // Output scenario path; empty writes to stdout
	genSeed      int64  // Seed for the scenario draw
	genFleetPath string // Fleet preset file
	genFleet     string // Named fleet preset; empty uses the explicit flags below

	genDrivers     int
	genRiders      int
	genGridRows    int64
	genGridCols    int64
	genSpeedMin    int64
	genSpeedMax    int64
	genPatienceMin int64
	genPatienceMax int64
	genSpan        int64
)

// generateCmd emits a synthetic, parseable scenario file
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic scenario",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := &scenario.GeneratorConfig{
			Seed:          genSeed,
			Drivers:       genDrivers,
			Riders:        genRiders,
			GridRows:      genGridRows,
			GridColumns:   genGridCols,
			SpeedMin:      genSpeedMin,
			SpeedMax:      genSpeedMax,
			PatienceMin:   genPatienceMin,
			PatienceMax:   genPatienceMax,
			TimestampSpan: genSpan,
		}
		if genFleet != "" {
			fleetCfg, err := GetFleetConfig(genFleetPath, genFleet, genSeed)
			if err != nil {
				logrus.Fatalf("Unable to load fleet preset: %v", err)
			}
			logrus.Infof("Using fleet preset %q", genFleet)
			cfg = fleetCfg
		}

		g, err := scenario.NewGenerator(*cfg)
		if err != nil {
			logrus.Fatalf("Invalid generator configuration: %v", err)
		}
		specs := g.Generate()

		if genOut == "" {
			if err := scenario.Write(os.Stdout, specs); err != nil {
				logrus.Fatalf("Unable to write scenario: %v", err)
			}
			return
		}
		if err := scenario.WriteFile(genOut, specs); err != nil {
			logrus.Fatalf("Unable to write scenario: %v", err)
		}
		logrus.Infof("Scenario with %d events written to %s", len(specs), genOut)
	},
}

func init() {
	generateCmd.Flags().StringVar(&genOut, "out", "", "Output scenario path (default: stdout)")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "Seed for the scenario draw")
	generateCmd.Flags().StringVar(&genFleetPath, "fleet-config", "fleets.yaml", "Fleet preset file")
	generateCmd.Flags().StringVar(&genFleet, "fleet", "", "Named fleet preset (overrides the explicit range flags)")

	generateCmd.Flags().IntVar(&genDrivers, "drivers", 10, "Number of driver requests")
	generateCmd.Flags().IntVar(&genRiders, "riders", 30, "Number of rider requests")
	generateCmd.Flags().Int64Var(&genGridRows, "grid-rows", 50, "Grid rows")
	generateCmd.Flags().Int64Var(&genGridCols, "grid-columns", 50, "Grid columns")
	generateCmd.Flags().Int64Var(&genSpeedMin, "speed-min", 1, "Minimum driver speed")
	generateCmd.Flags().Int64Var(&genSpeedMax, "speed-max", 5, "Maximum driver speed")
	generateCmd.Flags().Int64Var(&genPatienceMin, "patience-min", 5, "Minimum rider patience (in ticks)")
	generateCmd.Flags().Int64Var(&genPatienceMax, "patience-max", 60, "Maximum rider patience (in ticks)")
	generateCmd.Flags().Int64Var(&genSpan, "span", 200, "Request timestamps are drawn from [0, span]")

	rootCmd.AddCommand(generateCmd)
}
