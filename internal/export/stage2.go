package export

import (
	"sort"
	"strconv"

	"github.com/eva-zuliya/timetable-scheduling/internal/calendar"
	"github.com/eva-zuliya/timetable-scheduling/internal/model"
)

// Stage2Table renders one row per (group, course) with start/end day & hour,
// ISO date and day name, start/end clock time, venue name/capacity/occupancy
// and trainer id, per §6's stage-2 output contract.
func Stage2Table(cal *calendar.Calendar, sessions []model.Session, venues map[string]model.Venue, groups map[string]model.Group) Table {
	t := Table{
		Title: "Stage2",
		Headers: []string{
			"Group", "CourseBatch",
			"Day", "Date", "DayName",
			"StartHour", "EndHour", "StartClock", "EndClock",
			"Venue", "VenueCapacity", "VenueOccupancy",
			"Trainer",
		},
	}

	rows := append([]model.Session(nil), sessions...)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Day != rows[j].Day {
			return rows[i].Day < rows[j].Day
		}
		if rows[i].StartHour != rows[j].StartHour {
			return rows[i].StartHour < rows[j].StartHour
		}
		return rows[i].GroupID < rows[j].GroupID
	})

	hoursPerDay := cal.HoursPerDay()
	for _, s := range rows {
		startInDay := s.StartHour - s.Day*hoursPerDay
		endInDay := s.EndHour - s.Day*hoursPerDay

		day, _ := cal.DayAt(s.Day)
		venue := venues[s.Venue]
		group := groups[s.GroupID]

		t.Rows = append(t.Rows, []string{
			s.GroupID,
			s.CourseBatchID,
			strconv.Itoa(s.Day),
			day.Date.Format("2006-01-02"),
			day.Date.Weekday().String(),
			strconv.Itoa(s.StartHour),
			strconv.Itoa(s.EndHour),
			DisplayClock(startInDay, false),
			DisplayClock(endInDay, true),
			s.Venue,
			strconv.Itoa(venue.Capacity),
			strconv.Itoa(group.Size()),
			s.Trainer,
		})
	}

	return t
}
