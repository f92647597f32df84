package app

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/suxatcode/force-layout/internal/config"
)

// SetupLogging configures the global zerolog logger: level from
// conf.LogLevel, human readable output unless conf.Production is set.
func SetupLogging(conf config.Config, out io.Writer) {
	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	if conf.Production {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: out})
	}
	if err != nil {
		log.Warn().Msgf("failed to parse LogLevel: '%s', setting to debug", conf.LogLevel)
	}
}
