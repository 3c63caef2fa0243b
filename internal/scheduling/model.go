package scheduling

import (
	"fmt"

	"github.com/nextmv-io/sdk/mip"
)

// Lexicographic priority weights for stage 2's single weighted-sum objective
// (§4.5): daily-load imbalance dominates virtual-venue usage, which
// dominates trainer-load imbalance. The shared-session reward carries the
// largest weight of all, so one more shared session outweighs any change in
// the three terms above.
const (
	weightDailyImbalance   = 1_000_000
	weightVirtualSession   = 100
	weightTrainerImbalance = 1
	weightSharedSession    = 1_000_000_000
)

// Vars holds every per-GroupCourse candidate boolean and the bookkeeping
// needed to read a solution back into Session rows.
type Vars struct {
	Candidates map[GroupCourse][]Candidate
	Choice     map[GroupCourse][]mip.Bool
}

// BuildModel constructs stage 2's MIP: one candidate chosen per GroupCourse,
// group/venue/trainer no-overlap (with a shared-session exemption, §4.4),
// daily trainee load, cohort and global prerequisite ordering, and the
// lexicographic daily-imbalance / virtual-venue / trainer-imbalance /
// shared-session objective (§4.3-§4.5).
func BuildModel(in Inputs) (mip.Model, *Vars, error) {
	m := mip.NewModel()
	m.Objective().SetMinimize()

	groupCourses := in.GroupCourses()
	occ := occupancy(in.Groups)

	vars := &Vars{
		Candidates: make(map[GroupCourse][]Candidate, len(groupCourses)),
		Choice:     make(map[GroupCourse][]mip.Bool, len(groupCourses)),
	}

	for _, gc := range groupCourses {
		candidates := in.Generate(gc, occ)
		if len(candidates) == 0 {
			return nil, nil, fmt.Errorf("scheduling: no feasible slot for group %q course-batch %q", gc.GroupID, gc.CourseBatchID)
		}
		vars.Candidates[gc] = candidates

		choices := make([]mip.Bool, len(candidates))
		exactlyOne := m.NewConstraint(mip.Equal, 1)
		for i := range candidates {
			choices[i] = m.NewBool()
			exactlyOne.NewTerm(1, choices[i])
		}
		vars.Choice[gc] = choices
	}

	addNoOverlapConstraints(m, groupCourses, vars)
	addDailyLoadConstraints(m, in, groupCourses, vars)
	addPrerequisiteConstraints(m, in, groupCourses, vars)
	if in.IsUsingGlobalSequence {
		addGlobalSequenceConstraints(m, in, groupCourses, vars)
	}
	addObjective(m, in, groupCourses, vars)

	return m, vars, nil
}

// addNoOverlapConstraints implements §4.3 #5-#7: a group cannot attend two
// overlapping sessions; a venue or trainer cannot host two overlapping
// sessions, unless both are the identical (course-batch, start, venue,
// trainer) tuple — the shared-session exemption of §4.4.
func addNoOverlapConstraints(m mip.Model, groupCourses []GroupCourse, vars *Vars) {
	for i, gc1 := range groupCourses {
		for _, gc2 := range groupCourses[i+1:] {
			sameGroup := gc1.GroupID == gc2.GroupID
			for ci, c1 := range vars.Candidates[gc1] {
				for cj, c2 := range vars.Candidates[gc2] {
					if !c1.Overlaps(c2) {
						continue
					}

					if sameGroup && gc1.CourseBatchID != gc2.CourseBatchID {
						forbidPair(m, vars.Choice[gc1][ci], vars.Choice[gc2][cj])
						continue
					}

					shared := gc1.CourseBatchID == gc2.CourseBatchID &&
						c1.Start == c2.Start && c1.Venue.Name == c2.Venue.Name && c1.Trainer == c2.Trainer
					if shared {
						continue
					}

					if c1.Venue.Name == c2.Venue.Name {
						forbidPair(m, vars.Choice[gc1][ci], vars.Choice[gc2][cj])
					} else if c1.Trainer == c2.Trainer {
						forbidPair(m, vars.Choice[gc1][ci], vars.Choice[gc2][cj])
					}
				}
			}
		}
	}
}

func forbidPair(m mip.Model, a, b mip.Bool) {
	c := m.NewConstraint(mip.LessThanOrEqual, 1)
	c.NewTerm(1, a)
	c.NewTerm(1, b)
}

// addDailyLoadConstraints implements §4.3 #9: per group and per day, the
// summed duration of that group's sessions landing on that day may not
// exceed maximum_session_length.
func addDailyLoadConstraints(m mip.Model, in Inputs, groupCourses []GroupCourse, vars *Vars) {
	byGroup := make(map[string][]GroupCourse)
	for _, gc := range groupCourses {
		byGroup[gc.GroupID] = append(byGroup[gc.GroupID], gc)
	}

	for _, gcs := range byGroup {
		perDay := make(map[int]mip.Constraint)
		for _, gc := range gcs {
			cb := in.CourseBatches[gc.CourseBatchID]
			for ci, c := range vars.Candidates[gc] {
				con, ok := perDay[c.Day]
				if !ok {
					con = m.NewConstraint(mip.LessThanOrEqual, float64(in.MaximumSessionLength))
					perDay[c.Day] = con
				}
				con.NewTerm(float64(cb.DurationHours), vars.Choice[gc][ci])
			}
		}
	}
}

// addPrerequisiteConstraints implements §4.3 #10: within one group, a
// prerequisite course-batch must strictly start before its dependent.
func addPrerequisiteConstraints(m mip.Model, in Inputs, groupCourses []GroupCourse, vars *Vars) {
	for _, group := range in.Groups {
		byCourseName := make(map[string]GroupCourse)
		for _, cbID := range group.CourseBatches {
			cb, ok := in.CourseBatches[cbID]
			if !ok {
				continue
			}
			byCourseName[cb.Name] = GroupCourse{GroupID: group.ID, CourseBatchID: cbID}
		}

		for _, gc := range byCourseName {
			cb := in.CourseBatches[gc.CourseBatchID]
			for _, prereqName := range cb.Prerequisites {
				prereqGC, ok := byCourseName[prereqName]
				if !ok {
					continue // prerequisite not part of this group's course-set
				}
				addStrictBefore(m, vars, prereqGC, gc)
			}
		}
	}
}

// addGlobalSequenceConstraints implements §4.3 #11: for every pair of
// sessions anywhere in the company where the first's course is in the
// second's global_sequence, the first must end no later than the second
// starts — a weaker, cross-group ordering.
func addGlobalSequenceConstraints(m mip.Model, in Inputs, groupCourses []GroupCourse, vars *Vars) {
	byCourseName := make(map[string][]GroupCourse)
	for _, gc := range groupCourses {
		cb := in.CourseBatches[gc.CourseBatchID]
		key := cb.Company + "/" + cb.Name
		byCourseName[key] = append(byCourseName[key], gc)
	}

	for _, gc := range groupCourses {
		cb := in.CourseBatches[gc.CourseBatchID]
		for _, prereqName := range cb.GlobalSequence {
			for _, prereqGC := range byCourseName[cb.Company+"/"+prereqName] {
				addEndBeforeStart(m, vars, prereqGC, gc)
			}
		}
	}
}

// addStrictBefore adds start[before] + 1 <= start[after], expressed directly
// over the weighted candidate booleans (no auxiliary start variable needed).
func addStrictBefore(m mip.Model, vars *Vars, before, after GroupCourse) {
	c := m.NewConstraint(mip.LessThanOrEqual, -1)
	for i, cand := range vars.Candidates[before] {
		c.NewTerm(float64(cand.Start), vars.Choice[before][i])
	}
	for i, cand := range vars.Candidates[after] {
		c.NewTerm(-float64(cand.Start), vars.Choice[after][i])
	}
}

// addEndBeforeStart adds end[before] <= start[after].
func addEndBeforeStart(m mip.Model, vars *Vars, before, after GroupCourse) {
	c := m.NewConstraint(mip.LessThanOrEqual, 0)
	for i, cand := range vars.Candidates[before] {
		c.NewTerm(float64(cand.End), vars.Choice[before][i])
	}
	for i, cand := range vars.Candidates[after] {
		c.NewTerm(-float64(cand.Start), vars.Choice[after][i])
	}
}

// addObjective assembles §4.5's lexicographic weighted-sum objective:
// daily-load imbalance, then virtual-venue usage, then trainer-load
// imbalance, then a reward for cohorts sharing an identical session.
func addObjective(m mip.Model, in Inputs, groupCourses []GroupCourse, vars *Vars) {
	upperBound := 0.0
	for _, gc := range groupCourses {
		cb := in.CourseBatches[gc.CourseBatchID]
		upperBound += float64(cb.DurationHours)
	}
	if upperBound <= 0 {
		upperBound = 1
	}

	obj := m.Objective()

	for _, gc := range groupCourses {
		for i, cand := range vars.Candidates[gc] {
			if cand.Venue.IsVirtual {
				obj.NewTerm(weightVirtualSession, vars.Choice[gc][i])
			}
		}
	}

	// Tie one Int variable per distinct day/trainer to the summed duration
	// of whichever candidates land on it, via an equality constraint built
	// across every contributing candidate.
	dayTerms := make(map[int]mip.Constraint)
	dailyLoad := make(map[int]mip.Int)
	trainerTerms := make(map[string]mip.Constraint)
	trainerLoad := make(map[string]mip.Int)

	for _, gc := range groupCourses {
		cb := in.CourseBatches[gc.CourseBatchID]
		for i, cand := range vars.Candidates[gc] {
			choice := vars.Choice[gc][i]

			dayCon, ok := dayTerms[cand.Day]
			if !ok {
				dailyLoad[cand.Day] = m.NewInt(0, int(upperBound))
				dayCon = m.NewConstraint(mip.Equal, 0)
				dayCon.NewTerm(1, dailyLoad[cand.Day])
				dayTerms[cand.Day] = dayCon
			}
			dayCon.NewTerm(-float64(cb.DurationHours), choice)

			trainerCon, ok := trainerTerms[cand.Trainer]
			if !ok {
				trainerLoad[cand.Trainer] = m.NewInt(0, int(upperBound))
				trainerCon = m.NewConstraint(mip.Equal, 0)
				trainerCon.NewTerm(1, trainerLoad[cand.Trainer])
				trainerTerms[cand.Trainer] = trainerCon
			}
			trainerCon.NewTerm(-float64(cb.DurationHours), choice)
		}
	}

	maxDaily := m.NewInt(0, int(upperBound))
	minDaily := m.NewInt(0, int(upperBound))
	for _, v := range dailyLoad {
		ge := m.NewConstraint(mip.GreaterThanOrEqual, 0)
		ge.NewTerm(1, maxDaily)
		ge.NewTerm(-1, v)
		le := m.NewConstraint(mip.LessThanOrEqual, 0)
		le.NewTerm(1, minDaily)
		le.NewTerm(-1, v)
	}
	obj.NewTerm(weightDailyImbalance, maxDaily)
	obj.NewTerm(-weightDailyImbalance, minDaily)

	maxTrainer := m.NewInt(0, int(upperBound))
	minTrainer := m.NewInt(0, int(upperBound))
	for _, v := range trainerLoad {
		ge := m.NewConstraint(mip.GreaterThanOrEqual, 0)
		ge.NewTerm(1, maxTrainer)
		ge.NewTerm(-1, v)
		le := m.NewConstraint(mip.LessThanOrEqual, 0)
		le.NewTerm(1, minTrainer)
		le.NewTerm(-1, v)
	}
	obj.NewTerm(weightTrainerImbalance, maxTrainer)
	obj.NewTerm(-weightTrainerImbalance, minTrainer)

	addSharedSessionReward(m, obj, groupCourses, vars)
}

// addSharedSessionReward implements the §4.4 `same[g1,g2,c]` bonus: for
// every pair of groups needing the same course-batch, reward them landing
// on the identical (start, venue, trainer) candidate via a linearized AND
// of their two choice booleans.
func addSharedSessionReward(m mip.Model, obj mip.Objective, groupCourses []GroupCourse, vars *Vars) {
	byCourseBatch := make(map[string][]GroupCourse)
	for _, gc := range groupCourses {
		byCourseBatch[gc.CourseBatchID] = append(byCourseBatch[gc.CourseBatchID], gc)
	}

	for _, gcs := range byCourseBatch {
		for i, gc1 := range gcs {
			for _, gc2 := range gcs[i+1:] {
				for ci, c1 := range vars.Candidates[gc1] {
					for cj, c2 := range vars.Candidates[gc2] {
						if c1.Start != c2.Start || c1.Venue.Name != c2.Venue.Name || c1.Trainer != c2.Trainer {
							continue
						}
						x1, x2 := vars.Choice[gc1][ci], vars.Choice[gc2][cj]
						same := m.NewBool()

						le1 := m.NewConstraint(mip.LessThanOrEqual, 0)
						le1.NewTerm(1, same)
						le1.NewTerm(-1, x1)
						le2 := m.NewConstraint(mip.LessThanOrEqual, 0)
						le2.NewTerm(1, same)
						le2.NewTerm(-1, x2)
						ge := m.NewConstraint(mip.GreaterThanOrEqual, -1)
						ge.NewTerm(1, same)
						ge.NewTerm(-1, x1)
						ge.NewTerm(-1, x2)

						obj.NewTerm(-weightSharedSession, same)
					}
				}
			}
		}
	}
}
