package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eva-zuliya/timetable-scheduling/internal/batching"
	"github.com/eva-zuliya/timetable-scheduling/internal/model"
)

func TestStage1Table_OneRowPerAssignmentSortedByCourseBatchTrainee(t *testing.T) {
	results := []*batching.Result{
		{
			Company: "ACME",
			Assignments: []model.BatchAssignment{
				{Company: "ACME", Course: "Welding", BatchNo: 1, TraineeID: "E2", WeekShifts: [4]model.Shift{model.Shift1, model.Shift1, model.Shift1, model.Shift1}},
				{Company: "ACME", Course: "Welding", BatchNo: 1, TraineeID: "E1", WeekShifts: [4]model.Shift{model.ShiftNone, model.ShiftNone, model.ShiftNone, model.ShiftNone}},
			},
		},
	}
	trainees := map[string]model.Trainee{
		"E1": {ID: "E1", WeekShifts: model.DefaultWeekShifts(model.ShiftNone)},
		"E2": {ID: "E2", WeekShifts: model.DefaultWeekShifts(model.Shift1)},
	}

	table := Stage1Table(results, trainees)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "E1", table.Rows[0][3])
	assert.Equal(t, "E2", table.Rows[1][3])
	assert.Equal(t, "NonShift", table.Rows[0][4])
	assert.Equal(t, "Shift1/Shift1/Shift1/Shift1", table.Rows[1][8])
}

func TestStage1Table_MissingTraineeYieldsEmptyRotatingShift(t *testing.T) {
	results := []*batching.Result{
		{Assignments: []model.BatchAssignment{{Course: "Welding", BatchNo: 1, TraineeID: "Ghost"}}},
	}

	table := Stage1Table(results, map[string]model.Trainee{})

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "NonShift/NonShift/NonShift/NonShift", table.Rows[0][8])
}
