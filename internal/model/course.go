package model

import (
	"fmt"
	"math"
	"time"
)

// Course is a trainable unit, specialized into one or more CourseBatch
// instances by the batching stage.
type Course struct {
	Company        string
	Name           string
	Stream         string
	DurationHours  int
	Prerequisites  []string
	GlobalSequence []string
	ValidStartDate *time.Time
	ValidEndDate   *time.Time
}

// DurationFromMinutes converts a minute figure into the ceiling-hour
// duration used throughout the models, clamped to hoursPerDay. A
// non-positive or unparsable minutes value falls back to defaultHours
// (§6 default_course_duration).
func DurationFromMinutes(minutes, defaultHours, hoursPerDay int) int {
	hours := defaultHours
	if minutes > 0 {
		hours = int(math.Ceil(float64(minutes) / 60.0))
	}
	if hours > hoursPerDay {
		hours = hoursPerDay
	}
	if hours <= 0 {
		hours = 1
	}
	return hours
}

// ID is the course's identity within a company: company-qualified name.
func (c Course) ID() string {
	return c.Company + "/" + c.Name
}

// IsValidOn reports whether the course may run on calendar date d, given its
// optional validity window.
func (c Course) IsValidOn(d time.Time) bool {
	if c.ValidStartDate != nil && d.Before(*c.ValidStartDate) {
		return false
	}
	if c.ValidEndDate != nil && d.After(*c.ValidEndDate) {
		return false
	}
	return true
}

// CourseBatch specializes a Course by batch number, carrying the valid-start
// domain derived from the batching stage (§4.2).
type CourseBatch struct {
	Course
	BatchNumber int
	// ValidStartDomain, when non-nil, is the explicit set of absolute
	// horizon hour indices the session may start at. A nil domain means any
	// horizon slot is permitted.
	ValidStartDomain []int
}

// ID is the triple [company]-[name]-[batch_number] identity from §3.
func (cb CourseBatch) ID() string {
	return fmt.Sprintf("%s-%s-%d", cb.Company, cb.Name, cb.BatchNumber)
}

// AllowsStart reports whether hour is in the batch's valid-start domain.
func (cb CourseBatch) AllowsStart(hour int) bool {
	if cb.ValidStartDomain == nil {
		return true
	}
	for _, h := range cb.ValidStartDomain {
		if h == hour {
			return true
		}
	}
	return false
}

// DetectCycle runs a topological check over a course dependency graph built
// from either Prerequisites or GlobalSequence edges (edgeFn selects which).
// It returns the name of a course participating in a cycle, if any — per §9,
// cycles are invalid input that must be rejected (here: reported) rather
// than silently fed to the solver.
func DetectCycle(courses []Course, edgeFn func(Course) []string) (cycleMember string, found bool) {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	byName := make(map[string]Course, len(courses))
	for _, c := range courses {
		byName[c.Name] = c
	}

	color := make(map[string]int, len(courses))
	var stack []string

	var visit func(name string) bool
	visit = func(name string) bool {
		color[name] = gray
		stack = append(stack, name)
		c, ok := byName[name]
		if ok {
			for _, dep := range edgeFn(c) {
				if _, exists := byName[dep]; !exists {
					continue
				}
				switch color[dep] {
				case white:
					if visit(dep) {
						return true
					}
				case gray:
					cycleMember = dep
					return true
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[name] = black
		return false
	}

	for _, c := range courses {
		if color[c.Name] == white {
			if visit(c.Name) {
				return cycleMember, true
			}
		}
	}
	return "", false
}
