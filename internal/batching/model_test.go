package batching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eva-zuliya/timetable-scheduling/internal/model"
)

func TestBuildModel_OneVarSetPerCourse(t *testing.T) {
	stats := []courseStats{
		{
			course:           model.Course{Name: "Welding"},
			trainees:         []string{"E1", "E2"},
			countTrainers:    1,
			maxVenueCapacity: 10,
			minBatchesSlack:  3,
		},
	}
	shiftOf := func(string, int) model.Shift { return model.ShiftNone }

	m, courses := buildModel(stats, shiftOf, false)
	require.NotNil(t, m)
	require.Len(t, courses, 1)

	cv := courses[0]
	assert.Equal(t, 3, len(cv.batchUsed)) // maxBatches() within venue ceiling == minBatchesSlack
	assert.Len(t, cv.x, 2)
	for _, row := range cv.x {
		assert.Len(t, row, 3)
	}
	assert.Len(t, cv.run, 3)
	assert.Len(t, cv.run[0], weekCount)
}
