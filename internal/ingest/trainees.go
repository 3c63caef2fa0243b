package ingest

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/eva-zuliya/timetable-scheduling/internal/model"
)

// loadTrainees maps master_employee + master_course_trainee rows to domain
// trainees. It applies minimum_course_participant (§6) by dropping any
// course whose distinct enrolled-employee count falls below the threshold
// before building each trainee's course list, and drops trainees left with
// zero courses afterward (mirrors the reference ingestion's "only include
// trainees with at least one course").
func (in *Ingestor) loadTrainees(ctx context.Context, company string, minimumCourseParticipant int) ([]model.Trainee, error) {
	empRows, err := in.employees.ListByCompany(ctx, company)
	if err != nil {
		return nil, err
	}
	enrollRows, err := in.employees.ListEnrollment(ctx, company)
	if err != nil {
		return nil, err
	}

	distinctByCourse := make(map[string]map[string]struct{})
	for _, e := range enrollRows {
		course := strings.TrimSpace(e.CourseName)
		emp := strings.TrimSpace(e.EmployeeID)
		if course == "" || emp == "" {
			continue
		}
		if distinctByCourse[course] == nil {
			distinctByCourse[course] = make(map[string]struct{})
		}
		distinctByCourse[course][emp] = struct{}{}
	}

	eligibleCourse := make(map[string]struct{}, len(distinctByCourse))
	for course, emps := range distinctByCourse {
		if len(emps) >= minimumCourseParticipant {
			eligibleCourse[course] = struct{}{}
		} else {
			log.Info().Str("company", company).Str("course", course).Int("enrolled", len(emps)).
				Msg("ingest: dropping course below minimum_course_participant")
		}
	}

	coursesByEmployee := make(map[string][]string)
	for _, e := range enrollRows {
		course := strings.TrimSpace(e.CourseName)
		emp := strings.TrimSpace(e.EmployeeID)
		if course == "" || emp == "" {
			continue
		}
		if _, ok := eligibleCourse[course]; !ok {
			continue
		}
		coursesByEmployee[emp] = append(coursesByEmployee[emp], course)
	}

	seen := make(map[string]struct{}, len(empRows))
	out := make([]model.Trainee, 0, len(empRows))
	for _, r := range empRows {
		id := strings.TrimSpace(r.EmployeeID)
		if id == "" {
			log.Warn().Str("company", company).Msg("ingest: dropping employee row with blank employee_id")
			continue
		}
		if _, dup := seen[id]; dup {
			log.Warn().Str("company", company).Str("employee_id", id).Msg("ingest: dropping duplicate employee row, keeping first")
			continue
		}

		courses := coursesByEmployee[id]
		if len(courses) == 0 {
			continue
		}

		shift, err := ParseShift(r.Shift)
		if err != nil {
			log.Warn().Err(err).Str("company", company).Str("employee_id", id).Msg("ingest: dropping employee row with unrecognized shift")
			continue
		}
		weekShifts, err := ParseWeekShifts(shift, r.Week1Shift, r.Week2Shift, r.Week3Shift, r.Week4Shift)
		if err != nil {
			log.Warn().Err(err).Str("company", company).Str("employee_id", id).Msg("ingest: dropping employee row with unrecognized weekly shift override")
			continue
		}

		seen[id] = struct{}{}
		out = append(out, model.Trainee{
			Company:    company,
			ID:         id,
			Shift:      shift,
			Cycle:      ParseCycle(r.Cycle),
			Courses:    courses,
			WeekShifts: weekShifts,
		})
	}
	return out, nil
}
