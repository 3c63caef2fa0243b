// Package orchestrator drives the end-to-end run: configuration is already
// loaded by the caller; this package owns ingestion, the per-company
// batching loop, group formation and the single cross-company scheduling
// solve, and returns the results as a Report for the caller to pass to
// internal/export (§2 control flow).
package orchestrator

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/eva-zuliya/timetable-scheduling/internal/batching"
	"github.com/eva-zuliya/timetable-scheduling/internal/calendar"
	"github.com/eva-zuliya/timetable-scheduling/internal/config"
	"github.com/eva-zuliya/timetable-scheduling/internal/group"
	"github.com/eva-zuliya/timetable-scheduling/internal/ingest"
	"github.com/eva-zuliya/timetable-scheduling/internal/model"
	"github.com/eva-zuliya/timetable-scheduling/internal/scheduling"
)

// ingestor is the subset of *ingest.Ingestor this package depends on,
// narrowed to an interface so a run can be driven against a fake in tests
// (following the teacher's private-repository-interface pattern).
type ingestor interface {
	ListCompanies(ctx context.Context) ([]string, error)
	LoadCompanies(ctx context.Context, companies []string, streamWhitelist []string, minimumCourseParticipant, defaultCourseDuration, hoursPerDay int) ([]*ingest.CompanyData, error)
}

// Report is everything a run produced, ready to be handed to internal/export.
type Report struct {
	Calendar         *calendar.Calendar
	BatchingResults  []*batching.Result
	SchedulingResult *scheduling.Result
	Trainees         map[string]model.Trainee
	Venues           map[string]model.Venue
	Groups           map[string]model.Group
}

// Run executes one full pipeline pass: Ingestion -> (per company) Batching
// -> Group formation -> Scheduling (once, across every company) (§2/§5).
func Run(ctx context.Context, cfg *config.Config, ing ingestor) (*Report, error) {
	cal, err := calendar.New(calendar.Options{
		StartDate:   cfg.StartDate,
		Days:        cfg.Days,
		HoursPerDay: cfg.HoursPerDay,
		Holidays:    cfg.HolidayDays,
		Region:      cfg.HolidayRegion,
	})
	if err != nil {
		return nil, fmt.Errorf("orchestrator: build calendar: %w", err)
	}

	companies := cfg.Companies
	if len(companies) == 0 {
		companies, err = ing.ListCompanies(ctx)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: list companies: %w", err)
		}
	}

	data, err := ing.LoadCompanies(ctx, companies, cfg.CourseStream,
		cfg.MinimumCourseParticipant, cfg.DefaultCourseDuration, cfg.HoursPerDay)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load companies: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("orchestrator: no company had usable data")
	}

	report := &Report{
		Calendar: cal,
		Trainees: make(map[string]model.Trainee),
		Venues:   make(map[string]model.Venue),
		Groups:   make(map[string]model.Group),
	}

	var (
		allCourseBatches = make(map[string]model.CourseBatch)
		allGroups        []model.Group
		allVenues        []model.Venue
		allTrainers      []model.Trainer
	)

	for _, cd := range data {
		for _, t := range cd.Trainees {
			report.Trainees[t.ID] = t
		}
		for _, v := range cd.Venues {
			report.Venues[v.Name] = v
		}
		allVenues = append(allVenues, cd.Venues...)
		allTrainers = append(allTrainers, cd.Trainers...)

		var (
			batchWeeks  []model.BatchWeek
			membership  group.Membership
			traineeByID = make(map[string]model.Trainee, len(cd.Trainees))
		)
		for _, t := range cd.Trainees {
			traineeByID[t.ID] = t
		}

		if cfg.IsSplittingBatch {
			result, err := batching.Solve(ctx, cd, cfg)
			if err != nil {
				log.Warn().Str("company", cd.Company).Err(err).
					Msg("orchestrator: company skipped, no feasible batching solution")
				continue
			}
			report.BatchingResults = append(report.BatchingResults, result)
			batchWeeks = result.BatchWeeks
			membership = group.FromBatchAssignments(result)
		} else {
			membership = group.FromEnrollment(cd.Company, cd.Trainees)
		}

		if !cfg.IsSchedulingCourse {
			continue
		}

		var courseBatches []model.CourseBatch
		if cfg.IsSplittingBatch {
			courseBatches = scheduling.BuildCourseBatches(cal, cd.Courses, batchWeeks)
		} else {
			courseBatches = scheduling.BuildCourseBatchesFromEnrollment(cd.Courses)
		}
		for _, cb := range courseBatches {
			allCourseBatches[cb.ID()] = cb
		}

		groups := group.Form(cd.Company, membership, traineeByID, cfg.IsConsideringShift, cfg.MaximumGroupSize)
		for _, g := range groups {
			report.Groups[g.ID] = g
		}
		allGroups = append(allGroups, groups...)
	}

	if !cfg.IsSchedulingCourse {
		return report, nil
	}
	if len(allGroups) == 0 {
		log.Warn().Msg("orchestrator: no groups formed, skipping scheduling")
		return report, nil
	}

	schedulingInputs := scheduling.Inputs{
		Calendar:              cal,
		Venues:                allVenues,
		Trainers:              allTrainers,
		CourseBatches:         allCourseBatches,
		Groups:                allGroups,
		BufferCapacity:        cfg.BufferCapacity,
		MaximumSessionLength:  cfg.MaximumSessionLength,
		IsConsideringShift:    cfg.IsConsideringShift,
		IsUsingGlobalSequence: cfg.IsUsingGlobalSequence,
	}

	schedulingResult, err := scheduling.Solve(ctx, schedulingInputs, cfg)
	if err != nil {
		log.Error().Err(err).Msg("orchestrator: no feasible schedule found")
		return report, nil
	}
	report.SchedulingResult = schedulingResult

	return report, nil
}
