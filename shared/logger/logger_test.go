package logger_test

import (
	"bytes"
	"errors"
	"railbook/config"
	"railbook/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("ledger write failed"))

	assert.Contains(t, buf.String(), "ledger write failed")
}

func TestAlert(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger.Alert(errors.New("duplicate key"), "ledger integrity violation", map[string]any{"pnr": "AB12CD34EF"})

	out := buf.String()
	assert.Contains(t, out, `"alert":true`)
	assert.Contains(t, out, `"pnr":"AB12CD34EF"`)
	assert.Contains(t, out, "ledger integrity violation")
}

func TestUseStructuredOutput(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	tests := []struct {
		name     string
		env      string
		wantJSON bool
	}{
		{name: "development keeps console writer", env: "development", wantJSON: false},
		{name: "unset env keeps console writer", env: "", wantJSON: false},
		{name: "production writes json", env: "production", wantJSON: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var console, structured bytes.Buffer
			log.Logger = zerolog.New(&console)

			cfg := &config.Config{}
			cfg.Server.Env = tt.env
			cfg.App.Name = "railbook"

			logger.UseStructuredOutput(cfg, &structured)
			log.Info().Msg("hello")

			if tt.wantJSON {
				assert.Contains(t, structured.String(), `"app":"railbook"`)
				assert.Empty(t, console.String())
			} else {
				assert.Empty(t, structured.String())
			}
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	tests := []struct {
		name          string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{name: "debug level", logLevel: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "info level", logLevel: "info", expectedLevel: zerolog.InfoLevel},
		{name: "error level", logLevel: "error", expectedLevel: zerolog.ErrorLevel},
		{name: "invalid level defaults to trace", logLevel: "loud", expectedLevel: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}
