package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/schemakit/schemakit/cmd/schemakit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Err(err).Msg("")
		os.Exit(1)
	}
}
