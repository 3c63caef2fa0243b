package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eva-zuliya/timetable-scheduling/internal/calendar"
	"github.com/eva-zuliya/timetable-scheduling/internal/model"
)

func mustCalendar(t *testing.T, days int) *calendar.Calendar {
	t.Helper()
	start, err := time.Parse("2006-01-02", "2026-07-27") // Monday
	require.NoError(t, err)
	cal, err := calendar.New(calendar.Options{StartDate: start, Days: days, HoursPerDay: 8})
	require.NoError(t, err)
	return cal
}

func TestBuildCourseBatches_NonShiftOpensFullDay(t *testing.T) {
	cal := mustCalendar(t, 7)
	courses := []model.Course{{Name: "Welding"}}
	batchWeeks := []model.BatchWeek{{Course: "Welding", BatchNo: 1, Week: 1, Shift: model.ShiftNone}}

	batches := BuildCourseBatches(cal, courses, batchWeeks)
	require.Len(t, batches, 1)
	assert.NotEmpty(t, batches[0].ValidStartDomain)
	assert.Equal(t, 1, batches[0].BatchNumber)
}

func TestBuildCourseBatches_UnavailableOpensNothing(t *testing.T) {
	cal := mustCalendar(t, 7)
	courses := []model.Course{{Name: "Welding"}}
	batchWeeks := []model.BatchWeek{{Course: "Welding", BatchNo: 1, Week: 1, Shift: model.ShiftUnavailable}}

	batches := BuildCourseBatches(cal, courses, batchWeeks)
	require.Len(t, batches, 1)
	assert.Empty(t, batches[0].ValidStartDomain)
	assert.False(t, batches[0].AllowsStart(0))
}

func TestBuildCourseBatches_Shift1SecondHalfOnly(t *testing.T) {
	cal := mustCalendar(t, 7)
	courses := []model.Course{{Name: "Welding"}}
	batchWeeks := []model.BatchWeek{{Course: "Welding", BatchNo: 1, Week: 1, Shift: model.Shift1}}

	batches := BuildCourseBatches(cal, courses, batchWeeks)
	require.Len(t, batches, 1)
	for _, h := range batches[0].ValidStartDomain {
		assert.GreaterOrEqual(t, h%8, 4)
	}
}
