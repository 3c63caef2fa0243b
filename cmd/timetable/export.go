package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/eva-zuliya/timetable-scheduling/internal/config"
	"github.com/eva-zuliya/timetable-scheduling/internal/export"
	"github.com/eva-zuliya/timetable-scheduling/internal/orchestrator"
)

// writeReportFiles renders whichever of stage 1 / stage 2's tables the
// report actually produced, as CSV, one combined XLSX workbook, and a
// Markdown summary, named after cfg.ReportName (§6).
func writeReportFiles(report *orchestrator.Report, cfg *config.Config) error {
	var tables []export.Table

	if len(report.BatchingResults) > 0 {
		stage1 := export.Stage1Table(report.BatchingResults, report.Trainees)
		tables = append(tables, stage1)
		if err := writeFile(cfg.ReportName+"_stage1.csv", mustCSV(stage1)); err != nil {
			return err
		}
	}

	if report.SchedulingResult != nil {
		stage2 := export.Stage2Table(report.Calendar, report.SchedulingResult.Sessions, report.Venues, report.Groups)
		tables = append(tables, stage2)
		if err := writeFile(cfg.ReportName+"_stage2.csv", mustCSV(stage2)); err != nil {
			return err
		}
	} else {
		log.Warn().Msg("timetable: no schedule produced, skipping stage-2 export")
	}

	if len(tables) == 0 {
		log.Warn().Msg("timetable: nothing to export")
		return nil
	}

	workbook, err := export.WriteXLSX(tables...)
	if err != nil {
		return fmt.Errorf("render xlsx: %w", err)
	}
	if err := writeFile(cfg.ReportName+".xlsx", workbook); err != nil {
		return err
	}

	var markdown []byte
	for _, t := range tables {
		markdown = append(markdown, []byte("## "+t.Title+"\n\n")...)
		markdown = append(markdown, export.WriteMarkdown(t)...)
		markdown = append(markdown, '\n')
	}
	if err := writeFile(cfg.ReportName+".md", markdown); err != nil {
		return err
	}

	return nil
}

func mustCSV(t export.Table) []byte {
	data, err := export.WriteCSV(t)
	if err != nil {
		// Table is built in-process from already-validated data; a CSV
		// encoding failure here would mean a programmer error, not bad input.
		log.Error().Err(err).Str("table", t.Title).Msg("timetable: csv encode failed")
		return nil
	}
	return data
}

func writeFile(name string, data []byte) error {
	if data == nil {
		return nil
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	log.Info().Str("file", name).Msg("timetable: wrote report file")
	return nil
}
