// Package group aggregates stage-1 batching output (or raw enrollment, when
// batching is disabled) into Groups: trainees sharing an identical
// (course-batch-set, shift, cycle) signature (§3/§4 Group formation).
package group

import (
	"fmt"
	"sort"

	"github.com/eva-zuliya/timetable-scheduling/internal/batching"
	"github.com/eva-zuliya/timetable-scheduling/internal/model"
)

// Membership maps a trainee ID to the sorted course-batch IDs it belongs to.
type Membership map[string][]string

// FromBatchAssignments derives each trainee's course-batch membership from a
// stage-1 result: a trainee belongs to the course-batch identified by
// (company, course, batch_no) for every row assigned to it.
func FromBatchAssignments(result *batching.Result) Membership {
	membership := make(Membership)
	for _, a := range result.Assignments {
		membership[a.TraineeID] = append(membership[a.TraineeID], a.BatchID())
	}
	for id := range membership {
		sort.Strings(membership[id])
	}
	return membership
}

// FromEnrollment derives a synthetic single-batch membership directly from
// raw enrollment, used when is_splitting_batch is disabled: every course a
// trainee takes becomes course-batch number 1.
func FromEnrollment(company string, trainees []model.Trainee) Membership {
	membership := make(Membership, len(trainees))
	for _, t := range trainees {
		ids := make([]string, 0, len(t.Courses))
		for _, c := range t.Courses {
			ids = append(ids, fmt.Sprintf("%s-%s-%d", company, c, 1))
		}
		sort.Strings(ids)
		membership[t.ID] = ids
	}
	return membership
}

// Form builds Groups from a trainee membership table, splitting trainees
// that share an identical signature into one Group each, then subgroup-
// splitting every Group's trainee list to maxGroupSize (§3 Subgroup,
// maximum_group_size). shiftAware mirrors is_considering_shift: when true,
// shift and cycle participate in the signature key.
func Form(company string, membership Membership, trainees map[string]model.Trainee, shiftAware bool, maxGroupSize int) []model.Group {
	type bucket struct {
		courseBatches []string
		shift         model.Shift
		cycle         model.Cycle
		traineeIDs    []string
	}

	buckets := make(map[string]*bucket)
	for traineeID, courseBatches := range membership {
		if len(courseBatches) == 0 {
			continue
		}
		t := trainees[traineeID]
		sig := model.Signature(courseBatches, t.Shift, t.Cycle, shiftAware)
		b, ok := buckets[sig]
		if !ok {
			b = &bucket{courseBatches: courseBatches, shift: t.Shift, cycle: t.Cycle}
			buckets[sig] = b
		}
		b.traineeIDs = append(b.traineeIDs, traineeID)
	}

	sigs := make([]string, 0, len(buckets))
	for sig := range buckets {
		sigs = append(sigs, sig)
	}
	sort.Strings(sigs)

	groups := make([]model.Group, 0, len(buckets))
	for i, sig := range sigs {
		b := buckets[sig]
		sort.Strings(b.traineeIDs)
		id := fmt.Sprintf("%s-G%03d", company, i+1)
		groups = append(groups, model.Group{
			ID:            id,
			Company:       company,
			CourseBatches: b.courseBatches,
			Trainees:      b.traineeIDs,
			Shift:         b.shift,
			Cycle:         b.cycle,
			Subgroups:     model.SplitSubgroups(id, b.traineeIDs, maxGroupSize),
		})
	}
	return groups
}
