package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationFromMinutes(t *testing.T) {
	assert.Equal(t, 2, DurationFromMinutes(90, 1, 8))  // ceil(90/60)=2
	assert.Equal(t, 1, DurationFromMinutes(0, 1, 8))   // falls back to default
	assert.Equal(t, 8, DurationFromMinutes(1000, 1, 8)) // clamped to hoursPerDay
}

func TestCourseBatchAllowsStart(t *testing.T) {
	cb := CourseBatch{ValidStartDomain: nil}
	assert.True(t, cb.AllowsStart(5))

	cb.ValidStartDomain = []int{0, 8, 16}
	assert.True(t, cb.AllowsStart(8))
	assert.False(t, cb.AllowsStart(9))
}

func TestDetectCycle_NoCycle(t *testing.T) {
	courses := []Course{
		{Name: "A"},
		{Name: "B", Prerequisites: []string{"A"}},
		{Name: "C", Prerequisites: []string{"B"}},
	}
	_, found := DetectCycle(courses, func(c Course) []string { return c.Prerequisites })
	assert.False(t, found)
}

func TestDetectCycle_DirectCycle(t *testing.T) {
	courses := []Course{
		{Name: "A", Prerequisites: []string{"B"}},
		{Name: "B", Prerequisites: []string{"A"}},
	}
	member, found := DetectCycle(courses, func(c Course) []string { return c.Prerequisites })
	assert.True(t, found)
	assert.Contains(t, []string{"A", "B"}, member)
}

func TestDetectCycle_UnknownPrereqIgnored(t *testing.T) {
	courses := []Course{
		{Name: "A", Prerequisites: []string{"ghost"}},
	}
	_, found := DetectCycle(courses, func(c Course) []string { return c.Prerequisites })
	assert.False(t, found)
}
