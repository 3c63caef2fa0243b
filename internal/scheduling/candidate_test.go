package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eva-zuliya/timetable-scheduling/internal/model"
)

func basicInputs(t *testing.T) (Inputs, GroupCourse) {
	t.Helper()
	cal := mustCalendar(t, 1)

	cb := model.CourseBatch{
		Course:      model.Course{Name: "Welding", DurationHours: 4},
		BatchNumber: 1,
	}
	group := model.Group{
		ID:            "ACME-G001",
		CourseBatches: []string{cb.ID()},
		Trainees:      []string{"E1", "E2"},
		Shift:         model.ShiftNone,
		Cycle:         model.CycleWDays,
	}

	in := Inputs{
		Calendar:              cal,
		Venues:                []model.Venue{{Name: "Room A", Capacity: 10}},
		Trainers:              []model.Trainer{model.NewTrainer("T1", "Welding")},
		CourseBatches:         map[string]model.CourseBatch{cb.ID(): cb},
		Groups:                []model.Group{group},
		MaximumSessionLength:  8,
		IsConsideringShift:    true,
		IsUsingGlobalSequence: false,
	}
	return in, GroupCourse{GroupID: group.ID, CourseBatchID: cb.ID()}
}

func TestGroupCourses_SkipsUnknownCourseBatch(t *testing.T) {
	in, _ := basicInputs(t)
	in.Groups[0].CourseBatches = append(in.Groups[0].CourseBatches, "missing-batch")

	gcs := in.GroupCourses()
	require.Len(t, gcs, 1)
}

func TestGenerate_FullDayWindowForNonShift(t *testing.T) {
	in, gc := basicInputs(t)
	occ := occupancy(in.Groups)

	candidates := in.Generate(gc, occ)
	require.NotEmpty(t, candidates)
	for _, c := range candidates {
		assert.Equal(t, c.Start+4, c.End)
		assert.LessOrEqual(t, c.End-c.Day*8, 8)
	}
}

func TestGenerate_NoVenueMeetingCapacityYieldsNoCandidates(t *testing.T) {
	in, gc := basicInputs(t)
	in.Venues = []model.Venue{{Name: "Tiny", Capacity: 1}}
	occ := occupancy(in.Groups)

	candidates := in.Generate(gc, occ)
	assert.Empty(t, candidates)
}

func TestGenerate_WeekendExcludedForWDaysCycle(t *testing.T) {
	in, gc := basicInputs(t)
	in.Calendar = mustCalendar(t, 6) // Mon..Sat
	occ := occupancy(in.Groups)

	candidates := in.Generate(gc, occ)
	for _, c := range candidates {
		assert.NotEqual(t, 5, c.Day) // day index 5 is the Saturday
	}
}
