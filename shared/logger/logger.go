package logger

import (
	"io"
	"os"
	"railbook/config"
	"railbook/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output)
	log.Trace().Msg("Zerolog initialized.")
}

// UseStructuredOutput switches to plain JSON lines outside development so log shippers can parse them.
func UseStructuredOutput(cfg *config.Config, out io.Writer) {
	if cfg.Server.Env == constant.ServerEnvDevelopment || cfg.Server.Env == "" {
		return
	}

	log.Logger = zerolog.New(out).With().Timestamp().Str("app", cfg.App.Name).Logger()
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// Alert logs a condition that needs an operator rather than a retry.
func Alert(err error, msg string, fields map[string]any) {
	event := log.Error().Err(err).Bool("alert", true)

	for key, value := range fields {
		event = event.Interface(key, value)
	}

	event.Msg(msg)
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
