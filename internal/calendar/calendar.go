// Package calendar builds the business-day grid the solvers schedule against.
package calendar

import (
	"fmt"
	"time"

	"github.com/eva-zuliya/timetable-scheduling/internal/holiday"
)

// Day is one entry of the business-day grid.
type Day struct {
	Date      time.Time
	IsWeekend bool
}

// Calendar is the ordered sequence of business days covering a planning
// horizon, plus the derived indices the solvers need.
//
// Sundays are never part of the grid. Saturdays are included but marked
// IsWeekend; holidays (explicit or generated) are excluded entirely.
type Calendar struct {
	days        []Day
	index       map[string]int
	weekendIdx  []int
	weekGroups  map[int][]int
	hoursPerDay int
}

// Options configures calendar construction.
type Options struct {
	StartDate time.Time
	Days      int
	// Holidays is an explicit set of excluded dates, in addition to any
	// generated from Region/Year.
	Holidays []time.Time
	// Region, if non-empty, generates a regional holiday set (see
	// internal/holiday) merged with Holidays. Years spanned by the
	// requested horizon are generated automatically.
	Region      holiday.State
	HoursPerDay int
}

// New builds a Calendar by walking forward from opts.StartDate, skipping
// Sundays and holidays, until opts.Days business days are collected.
func New(opts Options) (*Calendar, error) {
	if opts.Days <= 0 {
		return nil, fmt.Errorf("calendar: days must be positive, got %d", opts.Days)
	}
	if opts.HoursPerDay <= 0 {
		return nil, fmt.Errorf("calendar: hours_per_day must be positive, got %d", opts.HoursPerDay)
	}

	excluded, err := excludedDates(opts)
	if err != nil {
		return nil, fmt.Errorf("calendar: %w", err)
	}

	cal := &Calendar{
		index:       make(map[string]int, opts.Days),
		weekGroups:  make(map[int][]int),
		hoursPerDay: opts.HoursPerDay,
	}

	firstMonday := mondayOf(opts.StartDate)

	cursor := opts.StartDate
	for len(cal.days) < opts.Days {
		wd := cursor.Weekday()
		if wd != time.Sunday {
			key := cursor.Format("2006-01-02")
			if _, isHoliday := excluded[key]; !isHoliday {
				i := len(cal.days)
				isWeekend := wd == time.Saturday
				cal.days = append(cal.days, Day{Date: cursor, IsWeekend: isWeekend})
				cal.index[key] = i

				if isWeekend {
					cal.weekendIdx = append(cal.weekendIdx, i)
				}

				week := weekOrdinal(firstMonday, cursor)
				cal.weekGroups[week] = append(cal.weekGroups[week], i)
			}
		}
		cursor = cursor.AddDate(0, 0, 1)
	}

	return cal, nil
}

func excludedDates(opts Options) (map[string]struct{}, error) {
	excluded := make(map[string]struct{}, len(opts.Holidays))
	for _, d := range opts.Holidays {
		excluded[d.Format("2006-01-02")] = struct{}{}
	}

	if opts.Region == "" {
		return excluded, nil
	}

	// Generate enough years to cover a horizon that may run past New Year's.
	endGuess := opts.StartDate.AddDate(0, 0, opts.Days*2+14)
	for year := opts.StartDate.Year(); year <= endGuess.Year(); year++ {
		defs, err := holiday.Generate(year, opts.Region)
		if err != nil {
			return nil, fmt.Errorf("generating holidays for %d/%s: %w", year, opts.Region, err)
		}
		for _, d := range defs {
			excluded[d.Date.Format("2006-01-02")] = struct{}{}
		}
	}
	return excluded, nil
}

func mondayOf(t time.Time) time.Time {
	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return t.AddDate(0, 0, -offset)
}

func weekOrdinal(firstMonday, date time.Time) int {
	days := int(date.Sub(firstMonday).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days / 7
}

// Len returns the number of business days in the grid.
func (c *Calendar) Len() int { return len(c.days) }

// HoursPerDay returns the configured hours-per-day.
func (c *Calendar) HoursPerDay() int { return c.hoursPerDay }

// Horizon returns the total number of schedulable hour slots: Len()*HoursPerDay().
func (c *Calendar) Horizon() int { return c.Len() * c.hoursPerDay }

// DayAt returns the Day at business-day index i.
func (c *Calendar) DayAt(i int) (Day, bool) {
	if i < 0 || i >= len(c.days) {
		return Day{}, false
	}
	return c.days[i], true
}

// IndexOf returns the business-day index for an ISO date, if it is part of
// the grid.
func (c *Calendar) IndexOf(date time.Time) (int, bool) {
	i, ok := c.index[date.Format("2006-01-02")]
	return i, ok
}

// WeekendIndex returns the sorted indices of Saturdays included in the grid.
func (c *Calendar) WeekendIndex() []int {
	out := make([]int, len(c.weekendIdx))
	copy(out, c.weekendIdx)
	return out
}

// IsWeekend reports whether business-day index i falls on a weekend.
func (c *Calendar) IsWeekend(dayIndex int) bool {
	d, ok := c.DayAt(dayIndex)
	return ok && d.IsWeekend
}

// WeekGroups returns week-ordinal -> sorted day indices of that week. Week 0
// is the ISO week containing the Monday of the first collected day.
func (c *Calendar) WeekGroups() map[int][]int {
	out := make(map[int][]int, len(c.weekGroups))
	for w, days := range c.weekGroups {
		cp := make([]int, len(days))
		copy(cp, days)
		out[w] = cp
	}
	return out
}

// DayHour splits an absolute horizon hour index into (day index, hour-in-day).
func (c *Calendar) DayHour(hour int) (day, hourInDay int) {
	return hour / c.hoursPerDay, hour % c.hoursPerDay
}

// HourRange returns the [start,end) absolute hour indices of business day d.
func (c *Calendar) HourRange(d int) (start, end int) {
	start = d * c.hoursPerDay
	return start, start + c.hoursPerDay
}
