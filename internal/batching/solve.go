package batching

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/nextmv-io/sdk/mip"
	"github.com/rs/zerolog/log"

	"github.com/eva-zuliya/timetable-scheduling/internal/config"
	"github.com/eva-zuliya/timetable-scheduling/internal/ingest"
	"github.com/eva-zuliya/timetable-scheduling/internal/model"
)

// acceptThreshold is the tolerance used to read a solver's continuous
// relaxation of a binary variable back as 0/1.
const acceptThreshold = 0.5

// Result is stage 1's output for one company: the trainee-level batch
// assignment table plus each used batch's single realized week+shift.
type Result struct {
	Company     string
	Assignments []model.BatchAssignment
	BatchWeeks  []model.BatchWeek
}

// Solve runs the stage-1 batching model for one company's ingested data.
func Solve(ctx context.Context, data *ingest.CompanyData, cfg *config.Config) (*Result, error) {
	stats := buildCourseStats(data, cfg.BufferCapacity, cfg.MinBatchesSlack)
	if len(stats) == 0 {
		return nil, fmt.Errorf("batching: company %q has no course eligible for batching", data.Company)
	}

	traineeByID := make(map[string]model.Trainee, len(data.Trainees))
	for _, t := range data.Trainees {
		traineeByID[t.ID] = t
	}
	shiftOf := func(traineeID string, week int) model.Shift {
		t, ok := traineeByID[traineeID]
		if !ok {
			return model.ShiftNone
		}
		return t.ShiftOnWeek(week + 1)
	}

	m, courses := buildModel(stats, shiftOf, cfg.EnableTrainerConcurrencyLimit)

	solver, err := mip.NewSolver(mip.Highs, m)
	if err != nil {
		return nil, fmt.Errorf("batching: create solver for company %q: %w", data.Company, err)
	}

	opts := mip.SolveOptions{}
	opts.Limits.Duration = solveTimeout(cfg.MaxTimeInSeconds)

	solution, err := solver.Solve(opts)
	if err != nil {
		return nil, fmt.Errorf("batching: solve company %q: %w", data.Company, err)
	}
	if !solution.IsOptimal() && !solution.IsSubOptimal() {
		return nil, fmt.Errorf("batching: no feasible batch solution for company %q", data.Company)
	}

	result := &Result{Company: data.Company}
	for _, cv := range courses {
		batchNo := 1
		for b := range cv.batchUsed {
			if solution.Value(cv.batchUsed[b]) < acceptThreshold {
				continue
			}

			week, shift := realizedWeekShift(solution, cv, b)
			result.BatchWeeks = append(result.BatchWeeks, model.BatchWeek{
				BatchID: fmt.Sprintf("%s-%s-%d", data.Company, cv.stats.course.Name, batchNo),
				Company: data.Company,
				Course:  cv.stats.course.Name,
				BatchNo: batchNo,
				Week:    week + 1,
				Shift:   shift,
			})

			for _, trainee := range cv.stats.trainees {
				if solution.Value(cv.x[trainee][b]) < acceptThreshold {
					continue
				}
				t := traineeByID[trainee]
				result.Assignments = append(result.Assignments, model.BatchAssignment{
					Company:    data.Company,
					Course:     cv.stats.course.Name,
					BatchNo:    batchNo,
					TraineeID:  trainee,
					WeekShifts: t.WeekShifts,
				})
			}
			batchNo++
		}
	}

	sort.Slice(result.Assignments, func(i, j int) bool {
		a, b := result.Assignments[i], result.Assignments[j]
		if a.Course != b.Course {
			return a.Course < b.Course
		}
		if a.BatchNo != b.BatchNo {
			return a.BatchNo < b.BatchNo
		}
		return a.TraineeID < b.TraineeID
	})

	log.Info().Str("company", data.Company).
		Int("assignments", len(result.Assignments)).
		Int("batches", len(result.BatchWeeks)).
		Msg("batching: solved")

	return result, nil
}

func realizedWeekShift(solution mip.Solution, cv courseVars, b int) (week int, shift model.Shift) {
	for w := 0; w < weekCount; w++ {
		if solution.Value(cv.run[b][w]) < acceptThreshold {
			continue
		}
		for si, sh := range shiftChoices {
			if solution.Value(cv.z[b][w][si]) >= acceptThreshold {
				return w, sh
			}
		}
		return w, model.ShiftNone
	}
	return 0, model.ShiftNone
}

// solveTimeout substitutes a 30s default for a non-positive
// cfg.MaxTimeInSeconds so a misconfigured zero duration cannot hang the
// batching loop forever; a positive value is used as given.
func solveTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return 30 * time.Second
	}
	return d
}
