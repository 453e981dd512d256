package main

import (
	"os"

	"github.com/koskimas/litespec/internal/cmd"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	wd, err := os.Getwd()
	if err != nil {
		logger.Fatal().Msg("failed to determine working directory")
	}

	err = cmd.Run(cmd.Settings{
		WorkingDir: wd,
		Logger:     logger,
	})

	if err != nil {
		logger.Fatal().Err(err).Msg("compilation failed")
	}
}
