package model

import (
	"sort"
	"strconv"
	"strings"
)

// Group is a maximal cohort of trainees sharing an identical
// (course-batch-set, shift, cycle) signature — the scheduling unit at cohort
// granularity (§3/GLOSSARY).
type Group struct {
	ID            string
	Company       string
	CourseBatches []string // course-batch IDs, the group's course-set
	Trainees      []string // trainee IDs
	Shift         Shift
	Cycle         Cycle
	// Subgroups partitions Trainees into chunks <= maximum_group_size, for
	// venue-capacity accounting only (§3).
	Subgroups map[string][]string
}

// Signature is the (course-set, shift, cycle) key that determines whether
// two trainees belong in the same Group. shiftAware controls whether shift
// and cycle participate (is_considering_shift, §6).
func Signature(courseBatches []string, shift Shift, cycle Cycle, shiftAware bool) string {
	sorted := append([]string(nil), courseBatches...)
	sort.Strings(sorted)
	key := strings.Join(sorted, "|")
	if shiftAware {
		key += "#" + shift.String() + "#" + cycle.String()
	}
	return key
}

// Size returns the number of trainees in the group.
func (g Group) Size() int { return len(g.Trainees) }

// SplitSubgroups partitions Trainees into chunks of at most maxSize,
// keyed "<GroupID>-sg<n>" (n from 0), for capacity accounting (§3 Subgroup).
func SplitSubgroups(groupID string, trainees []string, maxSize int) map[string][]string {
	if maxSize <= 0 {
		maxSize = len(trainees)
		if maxSize == 0 {
			maxSize = 1
		}
	}
	out := make(map[string][]string)
	for i := 0; i < len(trainees); i += maxSize {
		end := i + maxSize
		if end > len(trainees) {
			end = len(trainees)
		}
		key := subgroupKey(groupID, i/maxSize)
		out[key] = append([]string(nil), trainees[i:end]...)
	}
	return out
}

func subgroupKey(groupID string, n int) string {
	return groupID + "-sg" + strconv.Itoa(n)
}
