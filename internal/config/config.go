// Package config resolves client settings from flags, environment and an
// optional config file.
package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	// APIURL is the backend base URL, including the /api prefix.
	APIURL  string        `mapstructure:"api-url"`
	DBPath  string        `mapstructure:"db-path"`
	Timeout time.Duration `mapstructure:"timeout"`
	Verbose bool          `mapstructure:"verbose"`
}

// Load resolves configuration with precedence: flags, then CAMPUS_* env
// vars, then campusapp.toml in the working directory, then defaults.
func Load(flags *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix("campus")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("api-url", "http://localhost:3000/api")
	v.SetDefault("db-path", "campusapp.db")
	v.SetDefault("timeout", 15*time.Second)

	v.SetConfigName("campusapp")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// config file is optional
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
