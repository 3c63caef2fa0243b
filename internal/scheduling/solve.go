package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nextmv-io/sdk/mip"
	"github.com/rs/zerolog/log"

	"github.com/eva-zuliya/timetable-scheduling/internal/config"
	"github.com/eva-zuliya/timetable-scheduling/internal/model"
)

const acceptThreshold = 0.5

// Result is stage 2's output: one Session per (group, course-batch), plus
// the run handle it was solved under.
type Result struct {
	RunID    string
	Sessions []model.Session
}

// Solve runs the stage-2 scheduling model once, across every company's
// groups and course-batches combined (§5).
func Solve(ctx context.Context, in Inputs, cfg *config.Config) (*Result, error) {
	m, vars, err := BuildModel(in)
	if err != nil {
		return nil, fmt.Errorf("scheduling: build model: %w", err)
	}

	solver, err := mip.NewSolver(mip.Highs, m)
	if err != nil {
		return nil, fmt.Errorf("scheduling: create solver: %w", err)
	}

	opts := mip.SolveOptions{}
	opts.Limits.Duration = solveTimeout(cfg.MaxTimeInSeconds)

	solution, err := solver.Solve(opts)
	if err != nil {
		return nil, fmt.Errorf("scheduling: solve: %w", err)
	}
	if !solution.IsOptimal() && !solution.IsSubOptimal() {
		return nil, fmt.Errorf("scheduling: no feasible schedule found")
	}

	result := &Result{RunID: uuid.NewString()}
	for gc, choices := range vars.Choice {
		for i, choice := range choices {
			if solution.Value(choice) < acceptThreshold {
				continue
			}
			cand := vars.Candidates[gc][i]
			result.Sessions = append(result.Sessions, model.Session{
				CourseBatchID: gc.CourseBatchID,
				GroupID:       gc.GroupID,
				StartHour:     cand.Start,
				EndHour:       cand.End,
				Day:           cand.Day,
				Venue:         cand.Venue.Name,
				Trainer:       cand.Trainer,
				Active:        true,
			})
			break
		}
	}

	log.Info().Str("run_id", result.RunID).
		Int("sessions", len(result.Sessions)).
		Msg("scheduling: solved")

	return result, nil
}

func solveTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return 60 * time.Second
	}
	return d
}
