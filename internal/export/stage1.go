package export

import (
	"fmt"
	"sort"

	"github.com/eva-zuliya/timetable-scheduling/internal/batching"
	"github.com/eva-zuliya/timetable-scheduling/internal/model"
)

// Stage1Table renders one row per (company, course, batch_no, trainee_id),
// carrying week1..week4 and the trainee's original rotating-shift vector,
// per §6's stage-1 output contract.
func Stage1Table(results []*batching.Result, trainees map[string]model.Trainee) Table {
	t := Table{
		Title: "Stage1",
		Headers: []string{
			"Company", "Course", "BatchNo", "TraineeID",
			"Week1", "Week2", "Week3", "Week4",
			"RotatingShift",
		},
	}

	for _, r := range results {
		rows := append([]model.BatchAssignment(nil), r.Assignments...)
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Course != rows[j].Course {
				return rows[i].Course < rows[j].Course
			}
			if rows[i].BatchNo != rows[j].BatchNo {
				return rows[i].BatchNo < rows[j].BatchNo
			}
			return rows[i].TraineeID < rows[j].TraineeID
		})

		for _, a := range rows {
			t.Rows = append(t.Rows, []string{
				a.Company,
				a.Course,
				fmt.Sprintf("%d", a.BatchNo),
				a.TraineeID,
				a.WeekShifts[0].String(),
				a.WeekShifts[1].String(),
				a.WeekShifts[2].String(),
				a.WeekShifts[3].String(),
				rotatingShiftVector(trainees[a.TraineeID]),
			})
		}
	}

	return t
}

func rotatingShiftVector(tr model.Trainee) string {
	return fmt.Sprintf("%s/%s/%s/%s",
		tr.WeekShifts[0], tr.WeekShifts[1], tr.WeekShifts[2], tr.WeekShifts[3])
}
