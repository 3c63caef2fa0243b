package ingest

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/eva-zuliya/timetable-scheduling/internal/model"
)

// loadTrainers maps master_trainer + master_course_trainer rows to domain
// trainers, folding the eligibility table into each trainer's EligibleCourses
// set. Trainers with zero eligible courses after filtering are dropped (they
// cannot be assigned to any session, per the reference ingestion's "only
// include trainers with at least one eligible course").
func (in *Ingestor) loadTrainers(ctx context.Context, company string) ([]model.Trainer, error) {
	rows, err := in.trainers.ListByCompany(ctx, company)
	if err != nil {
		return nil, err
	}
	eligRows, err := in.trainers.ListEligibility(ctx, company)
	if err != nil {
		return nil, err
	}

	eligibleByTrainer := make(map[string][]string, len(rows))
	for _, e := range eligRows {
		id := strings.TrimSpace(e.TrainerID)
		course := strings.TrimSpace(e.CourseName)
		if id == "" || course == "" {
			continue
		}
		eligibleByTrainer[id] = append(eligibleByTrainer[id], course)
	}

	seen := make(map[string]struct{}, len(rows))
	out := make([]model.Trainer, 0, len(rows))
	for _, r := range rows {
		id := strings.TrimSpace(r.TrainerID)
		if id == "" {
			log.Warn().Str("company", company).Msg("ingest: dropping trainer row with blank trainer_id")
			continue
		}
		if _, dup := seen[id]; dup {
			log.Warn().Str("company", company).Str("trainer_id", id).Msg("ingest: dropping duplicate trainer row, keeping first")
			continue
		}
		eligible := eligibleByTrainer[id]
		if len(eligible) == 0 {
			log.Warn().Str("company", company).Str("trainer_id", id).Msg("ingest: dropping trainer with no eligible courses")
			continue
		}
		seen[id] = struct{}{}
		out = append(out, model.NewCompanyTrainer(company, id, eligible...))
	}
	return out, nil
}
