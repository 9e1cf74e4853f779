package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bharath-541/FinSight/config"
)

var log zerolog.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init configures the global logger from config. Development gets a pretty
// console writer, everything else stays JSON.
func Init(cfg *config.Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.App.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.App.Environment == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	log = logger.Level(level).With().Timestamp().Logger()
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
