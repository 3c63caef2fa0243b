package export

import "github.com/eva-zuliya/timetable-scheduling/internal/timeutil"

// displayBaseHour is the clock hour hour-index 0 maps to, before the
// lunch-break adjustment below.
const displayBaseHour = 8

// DisplayHour maps an in-day hour index to the clock hour shown in exports
// (§6 "Time display convention"): h+8 o'clock, with an extra hour added to
// skip a lunch break once h>3. An end-of-session boundary landing exactly at
// h=4 does not get the extra hour, since the session finishes before lunch
// rather than after it.
func DisplayHour(hourInDay int, isEnd bool) int {
	clock := hourInDay + displayBaseHour
	addLunch := hourInDay > 3
	if isEnd && hourInDay == 4 {
		addLunch = false
	}
	if addLunch {
		clock++
	}
	return clock
}

// DisplayClock formats the clock hour DisplayHour produces as "HH:00".
func DisplayClock(hourInDay int, isEnd bool) string {
	return timeutil.MinutesToString(DisplayHour(hourInDay, isEnd) * 60)
}
