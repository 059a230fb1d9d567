package config

import (
	"blackjack/internal/util"
	"errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"os"
)

// Config provides configuration for the blackjack table
type Config struct {
	loaded bool
	Dealer struct {
		StandThreshold int `yaml:"standThreshold" envconfig:"stand_threshold"`
	} `yaml:"dealer"`
	RNG struct {
		// Source is crypto or seeded
		Source string `yaml:"source"`
		Seed   int64  `yaml:"seed"`
	} `yaml:"rng"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Display struct {
		Color bool `yaml:"color"`
	} `yaml:"display"`
}

var config Config

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	cfg := Config{}
	cfg.Dealer.StandThreshold = 15
	cfg.RNG.Source = "crypto"
	cfg.Log.Level = "warn"
	cfg.Log.Format = "text"
	cfg.Display.Color = true

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values come from the defaults, then the config file (if it exists), then the environment.
// A .env file in the working directory is read into the environment first.
func Load() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cfg := DefaultConfig()
	configFile := util.Getenv("BLACKJACK_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	case !errors.Is(err, os.ErrNotExist):
		return err
	}

	if err := envconfig.Process("blackjack", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
