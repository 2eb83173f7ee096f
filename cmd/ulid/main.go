package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newCLI(os.Stdout, os.Stderr).run(context.Background(), os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("ulid failed")
		os.Exit(1)
	}
}
