package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		old, existed := os.LookupEnv(k)
		require.NoError(t, os.Unsetenv(k))
		t.Cleanup(func() {
			if existed {
				os.Setenv(k, old)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t, "DATABASE_URL", "DAYS", "HOURS_PER_DAY", "IS_SPLITTING_BATCH", "IS_SCHEDULING_COURSE", "START_DATE")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 28, cfg.Days)
	assert.Equal(t, 8, cfg.HoursPerDay)
	assert.True(t, cfg.IsSplittingBatch)
	assert.True(t, cfg.IsSchedulingCourse)
	assert.Equal(t, 3, cfg.MinBatchesSlack)
}

func TestLoad_InvalidDaysFallsBackToDefault(t *testing.T) {
	clearEnv(t, "DAYS")
	os.Setenv("DAYS", "not-a-number")
	t.Cleanup(func() { os.Unsetenv("DAYS") })

	// An unparsable DAYS falls back to the documented default rather than
	// failing, matching the teacher's parseDuration fallback behavior.
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 28, cfg.Days)
}

func TestLoad_RejectsBothStagesDisabled(t *testing.T) {
	clearEnv(t, "IS_SPLITTING_BATCH", "IS_SCHEDULING_COURSE")
	os.Setenv("IS_SPLITTING_BATCH", "false")
	os.Setenv("IS_SCHEDULING_COURSE", "false")
	t.Cleanup(func() {
		os.Unsetenv("IS_SPLITTING_BATCH")
		os.Unsetenv("IS_SCHEDULING_COURSE")
	})

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidHolidayRegion(t *testing.T) {
	clearEnv(t, "HOLIDAY_REGION")
	os.Setenv("HOLIDAY_REGION", "ZZ")
	t.Cleanup(func() { os.Unsetenv("HOLIDAY_REGION") })

	_, err := Load()
	assert.Error(t, err)
}
