package main

import (
	"github.com/rs/zerolog/log"

	_ "github.com/glasspane/glasspane/internal/init"
	"github.com/glasspane/glasspane/pkg/host"
)

func main() {
	h, err := host.NewHost()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating host")
	}

	if err := h.Start(); err != nil {
		log.Fatal().Err(err).Msg("error starting host")
	}
	log.Info().Msg("Host stopped")
}
