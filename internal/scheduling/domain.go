// Package scheduling implements stage 2 of the scheduler: placing one
// session per (group, course-batch) pair onto a concrete start hour, venue,
// and trainer within the planning horizon.
package scheduling

import (
	"github.com/eva-zuliya/timetable-scheduling/internal/calendar"
	"github.com/eva-zuliya/timetable-scheduling/internal/model"
)

// BuildCourseBatches specializes each course into the CourseBatch instances
// stage 1 produced, attaching the valid-start domain derived from that
// batch's single realized week+shift (§4.2/§4.3): NonShift opens every hour
// of the week's days, Shift1 the second half of each day, Shift2 the first
// half, and ShiftUnavailable opens nothing.
func BuildCourseBatches(cal *calendar.Calendar, courses []model.Course, batchWeeks []model.BatchWeek) []model.CourseBatch {
	byName := make(map[string]model.Course, len(courses))
	for _, c := range courses {
		byName[c.Name] = c
	}

	weekGroups := cal.WeekGroups()
	out := make([]model.CourseBatch, 0, len(batchWeeks))
	for _, bw := range batchWeeks {
		course, ok := byName[bw.Course]
		if !ok {
			continue
		}
		out = append(out, model.CourseBatch{
			Course:           course,
			BatchNumber:      bw.BatchNo,
			ValidStartDomain: validStartDomain(cal, weekGroups[bw.Week-1], bw.Shift),
		})
	}
	return out
}

// BuildCourseBatchesFromEnrollment builds one CourseBatch per course,
// unconditionally numbered 1 and with no valid-start restriction, used when
// is_splitting_batch is disabled and stage 2 runs directly off raw
// enrollment (§6 stage selectors).
func BuildCourseBatchesFromEnrollment(courses []model.Course) []model.CourseBatch {
	out := make([]model.CourseBatch, 0, len(courses))
	for _, c := range courses {
		out = append(out, model.CourseBatch{Course: c, BatchNumber: 1})
	}
	return out
}

// validStartDomain expands a week's business-day indices and a realized
// shift into the set of absolute horizon hours a session may start at.
func validStartDomain(cal *calendar.Calendar, dayIndices []int, shift model.Shift) []int {
	if shift == model.ShiftUnavailable {
		return []int{}
	}
	hoursPerDay := cal.HoursPerDay()
	start, end := shift.ShiftWindow(hoursPerDay)
	var domain []int
	for _, day := range dayIndices {
		dayStart, _ := cal.HourRange(day)
		for h := start; h < end; h++ {
			domain = append(domain, dayStart+h)
		}
	}
	return domain
}
