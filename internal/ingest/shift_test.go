package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eva-zuliya/timetable-scheduling/internal/model"
)

func TestParseShift_KnownSpellings(t *testing.T) {
	cases := map[string]model.Shift{
		"":           model.ShiftNone,
		"Non Shift":  model.ShiftNone,
		"NS":         model.ShiftNone,
		"Shift 1":    model.Shift1,
		"s1":         model.Shift1,
		"Shift 2":    model.Shift2,
		"2":          model.Shift2,
		"Unavailable": model.ShiftUnavailable,
	}
	for raw, want := range cases {
		got, err := ParseShift(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestParseShift_Unknown(t *testing.T) {
	_, err := ParseShift("graveyard")
	assert.ErrorIs(t, err, ErrUnknownShift)
}

func TestParseCycle_DefaultsToWDays(t *testing.T) {
	assert.Equal(t, model.CycleWDays, ParseCycle(""))
	assert.Equal(t, model.CycleWDays, ParseCycle("garbage"))
	assert.Equal(t, model.CycleWEnd, ParseCycle("WEnd"))
}

func TestParseWeekShifts_FallsBackToBase(t *testing.T) {
	week2 := "Shift 2"
	shifts, err := ParseWeekShifts(model.Shift1, nil, &week2, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, [4]model.Shift{model.Shift1, model.Shift2, model.Shift1, model.Shift1}, shifts)
}

func TestParseWeekShifts_InvalidOverride(t *testing.T) {
	bad := "???"
	_, err := ParseWeekShifts(model.ShiftNone, &bad, nil, nil, nil)
	assert.Error(t, err)
}
