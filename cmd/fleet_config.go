package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rideshare-sim/rideshare-sim/sim/scenario"
)

// FleetsConfig holds the named fleet/demand presets for the generator.
type FleetsConfig struct {
	Fleets map[string]Fleet `yaml:"fleets"`
}

// Fleet is one preset: how many participants to draw and from what ranges.
type Fleet struct {
	Drivers       int   `yaml:"drivers"`
	Riders        int   `yaml:"riders"`
	GridRows      int64 `yaml:"grid_rows"`
	GridColumns   int64 `yaml:"grid_columns"`
	SpeedMin      int64 `yaml:"speed_min"`
	SpeedMax      int64 `yaml:"speed_max"`
	PatienceMin   int64 `yaml:"patience_min"`
	PatienceMax   int64 `yaml:"patience_max"`
	TimestampSpan int64 `yaml:"timestamp_span"`
}

// GetFleetConfig loads the preset file and resolves one named preset into
// a generator configuration.
func GetFleetConfig(fleetFilePath string, fleetName string, seed int64) (*scenario.GeneratorConfig, error) {
	data, err := os.ReadFile(fleetFilePath)
	if err != nil {
		return nil, fmt.Errorf("reading fleet presets: %w", err)
	}

	var cfg FleetsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing fleet presets: %w", err)
	}

	fleet, ok := cfg.Fleets[fleetName]
	if !ok {
		return nil, fmt.Errorf("unknown fleet preset %q in %s", fleetName, fleetFilePath)
	}
	return &scenario.GeneratorConfig{
		Seed:          seed,
		Drivers:       fleet.Drivers,
		Riders:        fleet.Riders,
		GridRows:      fleet.GridRows,
		GridColumns:   fleet.GridColumns,
		SpeedMin:      fleet.SpeedMin,
		SpeedMax:      fleet.SpeedMax,
		PatienceMin:   fleet.PatienceMin,
		PatienceMax:   fleet.PatienceMax,
		TimestampSpan: fleet.TimestampSpan,
	}, nil
}
