package scheduling

import (
	"github.com/eva-zuliya/timetable-scheduling/internal/calendar"
	"github.com/eva-zuliya/timetable-scheduling/internal/model"
)

// GroupCourse identifies one (group, course-batch) pairing that needs a
// session placed — the scheduling atom stage 2 decides over (§3 Session).
type GroupCourse struct {
	GroupID       string
	CourseBatchID string
}

// Candidate is one feasible (start, venue, trainer) placement for a
// GroupCourse, already filtered against every static constraint that does
// not depend on another GroupCourse's choice: valid-start domain, shift
// window, weekend exclusion, validity window, and venue capacity against
// the course-batch's total (static) occupancy.
type Candidate struct {
	Start   int
	End     int
	Day     int
	Venue   model.Venue
	Trainer string
}

// Overlaps reports whether two candidates' [Start,End) intervals intersect.
func (c Candidate) Overlaps(other Candidate) bool {
	return c.Start < other.End && other.Start < c.End
}

// Inputs bundles the static data candidate generation and model building
// both need.
type Inputs struct {
	Calendar      *calendar.Calendar
	Venues        []model.Venue
	Trainers      []model.Trainer
	CourseBatches map[string]model.CourseBatch // by CourseBatch.ID()
	Groups        []model.Group

	BufferCapacity        int
	MaximumSessionLength  int
	IsConsideringShift    bool
	IsUsingGlobalSequence bool
}

// occupancy computes, per course-batch ID, the total trainee count across
// every group that needs it — a static fact once group formation is known.
// Generate checks venue capacity against this total, the load a venue
// carries if every such group shares one session (§4.4), so a venue smaller
// than the total is not offered even for one group's own session.
func occupancy(groups []model.Group) map[string]int {
	out := make(map[string]int)
	for _, g := range groups {
		for _, cbID := range g.CourseBatches {
			out[cbID] += g.Size()
		}
	}
	return out
}

// GroupCourses enumerates every (group, course-batch) pairing present in
// in.Groups, skipping course-batches that were dropped (e.g. no solvable
// batch in stage 1, or the course-batch was filtered out of in.CourseBatches).
func (in Inputs) GroupCourses() []GroupCourse {
	var out []GroupCourse
	for _, g := range in.Groups {
		for _, cbID := range g.CourseBatches {
			if _, ok := in.CourseBatches[cbID]; !ok {
				continue
			}
			out = append(out, GroupCourse{GroupID: g.ID, CourseBatchID: cbID})
		}
	}
	return out
}

// Generate builds every statically-feasible candidate for gc. Candidates
// that would conflict with another GroupCourse's choice (group/venue/trainer
// no-overlap, prerequisite ordering, daily load) are NOT filtered here — that
// is the MIP model's job (§4.3 #5-#11).
func (in Inputs) Generate(gc GroupCourse, occ map[string]int) []Candidate {
	cb := in.CourseBatches[gc.CourseBatchID]
	group := in.groupByID(gc.GroupID)
	if group == nil {
		return nil
	}

	cal := in.Calendar
	hoursPerDay := cal.HoursPerDay()
	duration := cb.DurationHours
	if duration <= 0 {
		duration = 1
	}

	shiftStart, shiftEnd := 0, hoursPerDay
	if in.IsConsideringShift {
		shiftStart, shiftEnd = group.Shift.ShiftWindow(hoursPerDay)
	}

	need := occ[gc.CourseBatchID]

	var candidates []Candidate
	for day := 0; day < cal.Len(); day++ {
		d, ok := cal.DayAt(day)
		if !ok {
			continue
		}
		if group.Cycle == model.CycleWDays && d.IsWeekend {
			continue
		}
		if !cb.IsValidOn(d.Date) {
			continue
		}

		dayStart, dayEnd := cal.HourRange(day)
		for hourInDay := shiftStart; hourInDay+duration <= shiftEnd && hourInDay+duration <= hoursPerDay; hourInDay++ {
			start := dayStart + hourInDay
			end := start + duration
			if end > dayEnd {
				continue
			}
			if !cb.AllowsStart(start) {
				continue
			}

			for _, v := range in.Venues {
				if v.Company != group.Company {
					continue
				}
				if v.EffectiveCapacity(in.BufferCapacity) < need {
					continue
				}
				for _, tr := range in.Trainers {
					if tr.Company != group.Company {
						continue
					}
					if !tr.CanTeach(cb.Name) {
						continue
					}
					candidates = append(candidates, Candidate{
						Start:   start,
						End:     end,
						Day:     day,
						Venue:   v,
						Trainer: tr.ID,
					})
				}
			}
		}
	}
	return candidates
}

func (in Inputs) groupByID(id string) *model.Group {
	for i := range in.Groups {
		if in.Groups[i].ID == id {
			return &in.Groups[i]
		}
	}
	return nil
}
