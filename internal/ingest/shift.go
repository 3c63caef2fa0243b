package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eva-zuliya/timetable-scheduling/internal/model"
)

// ErrUnknownShift is returned by ParseShift for a code that matches none of
// the spellings the upstream master tables are known to use.
var ErrUnknownShift = fmt.Errorf("ingest: unrecognized shift code")

// ParseShift normalizes the several spellings the source systems use for a
// shift ("Shift 1", "S1", "1", "NonShift", "NS", "Non Shift", "" ...) down to
// the canonical model.Shift enum (see model.Shift doc comment).
func ParseShift(raw string) (model.Shift, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")

	switch s {
	case "", "nonshift", "ns", "0":
		return model.ShiftNone, nil
	case "shift1", "s1", "1":
		return model.Shift1, nil
	case "shift2", "s2", "2":
		return model.Shift2, nil
	case "shift3", "s3", "3", "unavailable":
		return model.ShiftUnavailable, nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		if sh := model.Shift(n); sh.Valid() {
			return sh, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShift, raw)
}

// ParseCycle normalizes "WDays"/"WEnd" (case-insensitive, whitespace
// tolerant); unrecognized or empty values default to CycleWDays, the safer
// (weekend-excluded) default.
func ParseCycle(raw string) model.Cycle {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "wend" || s == "weekend" {
		return model.CycleWEnd
	}
	return model.CycleWDays
}

// ParseWeekShifts builds the four-week rotation from optional per-week
// override strings, falling back to base for any week left blank.
func ParseWeekShifts(base model.Shift, week1, week2, week3, week4 *string) ([4]model.Shift, error) {
	out := model.DefaultWeekShifts(base)
	overrides := [4]*string{week1, week2, week3, week4}
	for i, ov := range overrides {
		if ov == nil || strings.TrimSpace(*ov) == "" {
			continue
		}
		sh, err := ParseShift(*ov)
		if err != nil {
			return out, fmt.Errorf("week%d: %w", i+1, err)
		}
		out[i] = sh
	}
	return out, nil
}
