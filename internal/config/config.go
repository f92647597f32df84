package config

import (
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/pkg/errors"
)

type Config struct {
	Production bool `env:"PRODUCTION" envDefault:"false"`
	// Levels are {trace, debug, info, warn, error, fatal, panic}.
	// See github.com/rs/zerolog@v1.19.0/log.go for possible values.
	LogLevel string `env:"LOGLEVEL" envDefault:"info"`
	// Timeout bounds a single layout computation.
	Timeout time.Duration `env:"LAYOUT_TIMEOUT" envDefault:"1m"`
	// MaxTicks bounds the number of ticks of a single layout computation, 0
	// runs until the simulation has cooled down.
	MaxTicks int `env:"LAYOUT_MAX_TICKS" envDefault:"0"`
}

func GetEnvConfig() (Config, error) {
	conf := Config{}
	if err := env.Parse(&conf); err != nil {
		return conf, errors.Wrap(err, "failed to parse environment")
	}
	return conf, nil
}
