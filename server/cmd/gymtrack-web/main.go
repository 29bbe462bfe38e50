package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/gymtrack/gymtrack-web/server/webservice"
)

func main() {
	if err := webservice.Run(); err != nil {
		log.Error().Err(err).Msg("gymtrack-web exited with error")
		os.Exit(1)
	}
}
