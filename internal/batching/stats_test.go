package batching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eva-zuliya/timetable-scheduling/internal/ingest"
	"github.com/eva-zuliya/timetable-scheduling/internal/model"
)

func TestMaxBatches_WithinVenueCeiling(t *testing.T) {
	s := courseStats{trainees: make([]string, 10), countTrainers: 2, maxVenueCapacity: 30, minBatchesSlack: 3}
	assert.Equal(t, 3, s.maxBatches())
}

func TestMaxBatches_TrainerBound(t *testing.T) {
	// 100 trainees, 30 capacity, 2 trainers: trainee_per_trainer = ceil(100/2)=50 > 30
	// batch_per_trainer = ceil(50/30) = 2 -> 2*2+3 = 7
	s := courseStats{trainees: make([]string, 100), countTrainers: 2, maxVenueCapacity: 30, minBatchesSlack: 3}
	assert.Equal(t, 7, s.maxBatches())
}

func TestMaxBatches_TrainerOnly(t *testing.T) {
	// 40 trainees, 30 capacity, 2 trainers: trainee_per_trainer=ceil(40/2)=20<=30
	// -> count_trainers + slack = 2+3 = 5
	s := courseStats{trainees: make([]string, 40), countTrainers: 2, maxVenueCapacity: 30, minBatchesSlack: 3}
	assert.Equal(t, 5, s.maxBatches())
}

func TestBuildCourseStats_DropsCoursesWithNoTrainerOrTrainee(t *testing.T) {
	data := &ingest.CompanyData{
		Company: "ACME",
		Venues:  []model.Venue{{Company: "ACME", Name: "Room A", Capacity: 20}},
		Trainers: []model.Trainer{
			model.NewTrainer("T1", "Welding"),
		},
		Courses: []model.Course{
			{Company: "ACME", Name: "Welding"},
			{Company: "ACME", Name: "Safety"}, // no eligible trainer
		},
		Trainees: []model.Trainee{
			{Company: "ACME", ID: "E1", Courses: []string{"Welding"}},
		},
	}

	stats := buildCourseStats(data, 5, 3)
	require.Len(t, stats, 1)
	assert.Equal(t, "Welding", stats[0].course.Name)
	assert.Equal(t, 25, stats[0].maxVenueCapacity) // 20 + buffer 5
}

func TestShiftChoiceIndex(t *testing.T) {
	assert.Equal(t, 0, shiftChoiceIndex(model.ShiftNone))
	assert.Equal(t, 1, shiftChoiceIndex(model.Shift1))
	assert.Equal(t, 2, shiftChoiceIndex(model.Shift2))
	assert.Equal(t, -1, shiftChoiceIndex(model.ShiftUnavailable))
}
