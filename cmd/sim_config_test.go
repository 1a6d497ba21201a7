package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rideshare-sim/rideshare-sim/internal/testutil"
	"github.com/rideshare-sim/rideshare-sim/sim"
)

func TestLoadSimConfig_Defaults(t *testing.T) {
	cfg, err := LoadSimConfig("")
	require.NoError(t, err)
	assert.Equal(t, sim.HorizonUnbounded, cfg.Horizon)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "", cfg.Report)
	assert.False(t, cfg.PrintEvents)
}

func TestLoadSimConfig_FromFile(t *testing.T) {
	path := testutil.WriteTempFile(t, "rideshare-sim.yaml",
		"horizon: 500\nlog_level: info\nprint_events: true\n")

	cfg, err := LoadSimConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(500), cfg.Horizon)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.PrintEvents)
	// Unset keys keep their defaults.
	assert.Equal(t, "", cfg.Report)
}

func TestLoadSimConfig_EnvOverridesFile(t *testing.T) {
	path := testutil.WriteTempFile(t, "rideshare-sim.yaml", "horizon: 500\n")
	t.Setenv("RIDESIM_HORIZON", "900")
	t.Setenv("RIDESIM_LOG_LEVEL", "debug")

	cfg, err := LoadSimConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(900), cfg.Horizon)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadSimConfig_ExplicitMissingFile(t *testing.T) {
	_, err := LoadSimConfig("no-such-config.yaml")
	require.Error(t, err)
}
