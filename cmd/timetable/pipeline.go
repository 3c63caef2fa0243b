package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/eva-zuliya/timetable-scheduling/internal/config"
	"github.com/eva-zuliya/timetable-scheduling/internal/ingest"
	"github.com/eva-zuliya/timetable-scheduling/internal/orchestrator"
	"github.com/eva-zuliya/timetable-scheduling/internal/repository"
)

// runPipeline loads configuration, applies the given overrides, connects to
// the master database, and runs one orchestrator pass, writing the result
// tables to disk under cfg.ReportName (§2/§6).
func runPipeline(overrides func(*config.Config)) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("timetable: load configuration: %w", err)
	}
	if overrides != nil {
		overrides(cfg)
	}

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{})
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("timetable: connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("timetable: failed to close database connection")
		}
	}()

	ingestor := ingest.New(db)

	ctx := context.Background()
	report, err := orchestrator.Run(ctx, cfg, ingestor)
	if err != nil {
		return fmt.Errorf("timetable: run: %w", err)
	}

	if err := writeReportFiles(report, cfg); err != nil {
		return fmt.Errorf("timetable: write report: %w", err)
	}

	return nil
}
