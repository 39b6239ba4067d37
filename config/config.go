// Package config is for the GA parameter settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

// DefaultFile is the parameter file read when none is specified
const DefaultFile = "gaparam.in"

// Config is the GA parameter set driving a clustering run. It's read
// from a key/value parameter file ("gaparam.in" by default); every key
// has a default so the file is optional
type Config struct {
	// the number of genomes per generation
	PopulationSize int `mapstructure:"population_size"`

	// the number of generations to run
	Generations int `mapstructure:"number_of_generations"`

	// the per-gene mutation rate
	PMutation float64 `mapstructure:"pmutation"`

	// the chance a selected pair of genomes is recombined
	PCrossover float64 `mapstructure:"pcrossover"`

	// whether the best genome survives into the next generation
	Elitism bool `mapstructure:"elitism"`
}

// New returns a new Config populated by Viper from the parameter file at
// path. A missing default file falls back to the built-in defaults; a
// missing file the user asked for by name is fatal
func New(path string) *Config {
	v := viper.New()
	v.SetDefault("population_size", 50)
	v.SetDefault("number_of_generations", 100)
	v.SetDefault("pmutation", 0.01)
	v.SetDefault("pcrossover", 0.9)
	v.SetDefault("elitism", true)

	if path == "" {
		path = DefaultFile
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// only the implicit default file is allowed to be absent
		if path != DefaultFile {
			log.Fatalf("failed to open GA parameter file %s: %v", path, err)
		}
	} else if err := v.ReadInConfig(); err != nil {
		log.Fatalf("failed to read GA parameter file %s: %v", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode GA parameters into struct, %v", err)
	}

	return &c
}
