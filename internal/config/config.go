package config

import "github.com/spf13/viper"

// Config holds all runtime configuration for a reagent run.
// Values are populated from .reagent.yaml, REAGENT_* env vars, and CLI flags.
type Config struct {
	TablePath     string `mapstructure:"table_path"`
	LexiconPath   string `mapstructure:"lexicon_path"`
	Separator     string `mapstructure:"separator"`
	TelemetryPath string `mapstructure:"telemetry_path"`
	Verbose       bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("table_path", "formulas.csv")
	viper.SetDefault("lexicon_path", "lexicon.db")
	viper.SetDefault("separator", "[SEP]")
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
