package cmd

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rideshare-sim/rideshare-sim/sim"
)

// SimConfig carries the run parameters that can be set outside the command
// line: built-in defaults < rideshare-sim.yaml < RIDESIM_* environment
// variables (a .env file is loaded first if present).
type SimConfig struct {
	Horizon     int64  `mapstructure:"horizon"`
	LogLevel    string `mapstructure:"log_level"`
	Report      string `mapstructure:"report"`
	PrintEvents bool   `mapstructure:"print_events"`
}

// LoadSimConfig resolves the layered configuration. An empty configPath
// searches the working directory for rideshare-sim.yaml; a missing file is
// fine there, but an explicitly named file must exist.
func LoadSimConfig(configPath string) (*SimConfig, error) {
	// Load .env if it exists (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("horizon", sim.HorizonUnbounded)
	v.SetDefault("log_level", "error")
	v.SetDefault("report", "")
	v.SetDefault("print_events", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("rideshare-sim")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("RIDESIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A config file is optional when searched for, mandatory when named.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg SimConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}
