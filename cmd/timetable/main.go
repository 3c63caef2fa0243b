// Package main is the entry point for the timetable scheduler CLI.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("timetable: command failed")
		os.Exit(1)
	}
}
