// Package config loads solver settings from defaults, an optional
// twenty48.yaml file, and TWENTY48_-prefixed environment variables.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	StrategyType  string
	HeuristicName string
	Depth         int
	Probability   float64
	Trials        int

	GameCount   int
	Parallelism int
	LogLevel    string
}

// Load reads configuration from the given directory (the working
// directory when empty). A missing config file is not an error; every
// setting has a default.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetDefault("strategy", "expectimax-depth")
	v.SetDefault("heuristic", "corner")
	v.SetDefault("depth", 4)
	v.SetDefault("probability", 0.0025)
	v.SetDefault("trials", 256)
	v.SetDefault("games", 10)
	v.SetDefault("parallelism", 0)
	v.SetDefault("loglevel", "info")

	v.SetEnvPrefix("twenty48")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("twenty48")
	v.SetConfigType("yaml")
	if dir == "" {
		dir = "."
	}
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		StrategyType:  v.GetString("strategy"),
		HeuristicName: v.GetString("heuristic"),
		Depth:         v.GetInt("depth"),
		Probability:   v.GetFloat64("probability"),
		Trials:        v.GetInt("trials"),
		GameCount:     v.GetInt("games"),
		Parallelism:   v.GetInt("parallelism"),
		LogLevel:      v.GetString("loglevel"),
	}, nil
}
