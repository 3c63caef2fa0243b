// Package batching implements stage 1 of the scheduler: partitioning each
// course's enrolled trainees into capacity-bounded batches and assigning
// each batch a single week+shift within the four-week rotation.
package batching

import (
	"math"

	"github.com/eva-zuliya/timetable-scheduling/internal/ingest"
	"github.com/eva-zuliya/timetable-scheduling/internal/model"
)

// courseStats is the per-course input the batching model is built from:
// which trainees need the course, how many trainers could teach it, and the
// capacity ceiling any one batch can use.
type courseStats struct {
	course           model.Course
	trainees         []string // trainee IDs enrolled in this course
	countTrainers    int
	maxVenueCapacity int
	minBatchesSlack  int
}

// maxBatches bounds how many batches a course could ever need: once trainee
// count is within the venue ceiling, minBatchesSlack alone is enough
// headroom; past that, scale with trainer and venue throughput (§4.2).
func (s courseStats) maxBatches() int {
	if len(s.trainees) <= s.maxVenueCapacity {
		return s.minBatchesSlack
	}
	traineePerTrainer := int(math.Ceil(float64(len(s.trainees)) / float64(s.countTrainers)))
	if traineePerTrainer <= s.maxVenueCapacity {
		return s.countTrainers + s.minBatchesSlack
	}
	batchPerTrainer := int(math.Ceil(float64(traineePerTrainer) / float64(s.maxVenueCapacity)))
	return s.countTrainers*batchPerTrainer + s.minBatchesSlack
}

// buildCourseStats derives per-course batching inputs from ingested company
// data, dropping any course with no enrolled trainees or no eligible
// trainer — it cannot be batched at all (mirrors the reference ingestion's
// "if trainees and trainer" filter).
func buildCourseStats(data *ingest.CompanyData, bufferCapacity, minBatchesSlack int) []courseStats {
	maxCapacity := 0
	for _, v := range data.Venues {
		if c := v.EffectiveCapacity(bufferCapacity); c > maxCapacity {
			maxCapacity = c
		}
	}

	traineesByCourse := make(map[string][]string)
	for _, t := range data.Trainees {
		for _, c := range t.Courses {
			traineesByCourse[c] = append(traineesByCourse[c], t.ID)
		}
	}
	trainersByCourse := make(map[string]int)
	for _, c := range data.Courses {
		count := 0
		for _, tr := range data.Trainers {
			if tr.CanTeach(c.Name) {
				count++
			}
		}
		trainersByCourse[c.Name] = count
	}

	out := make([]courseStats, 0, len(data.Courses))
	for _, c := range data.Courses {
		trainees := traineesByCourse[c.Name]
		trainers := trainersByCourse[c.Name]
		if len(trainees) == 0 || trainers == 0 {
			continue
		}
		out = append(out, courseStats{
			course:           c,
			trainees:         trainees,
			countTrainers:    trainers,
			maxVenueCapacity: maxCapacity,
			minBatchesSlack:  minBatchesSlack,
		})
	}
	return out
}
