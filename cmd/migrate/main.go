package main

import (
	"os"
	"railbook/config"
	"railbook/helper"
	"railbook/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if len(os.Args) < 2 { //nolint:mnd
		log.Fatal().Msgf("Migration action is required, use one of %s", helper.ActionNames())
	}

	action, err := helper.ParseAction(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid migration action")
	}

	if err := helper.Run(cfg, action); err != nil {
		log.Fatal().Err(err).Str("action", string(action)).Msg("Migration failed")
	}
}
