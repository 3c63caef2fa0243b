package batching

import (
	"github.com/nextmv-io/sdk/mip"

	"github.com/eva-zuliya/timetable-scheduling/internal/model"
)

// Lexicographic priority weights for the single weighted-sum objective
// (§4.2 objective): makespan dominates batch count, which dominates size
// imbalance, which dominates the flexibility reward.
const (
	weightMakespan      = 10000
	weightBatchCount    = 200
	weightSizeImbalance = 10
	weightFlexibility   = 1
)

// weekCount is the fixed four-week rotation (§3).
const weekCount = 4

// shiftChoices is the set of shifts a feasible week can run on; unavailable
// (ShiftUnavailable) is never a *run* choice, only a per-trainee blocker.
var shiftChoices = []model.Shift{model.ShiftNone, model.Shift1, model.Shift2}

// traineeShiftFunc resolves a trainee's realized shift on a 0-based week.
type traineeShiftFunc func(traineeID string, week int) model.Shift

// courseVars holds every decision variable scoped to one course.
type courseVars struct {
	stats     courseStats
	makespan  mip.Int
	minSize   mip.Int
	maxSize   mip.Int
	batchUsed []mip.Bool            // [batch]
	size      []mip.Int             // [batch]
	x         map[string][]mip.Bool // trainee -> [batch]
	run       [][]mip.Bool          // [batch][week]
	feasible  [][]mip.Bool          // [batch][week]
	z         [][][]mip.Bool        // [batch][week][shiftChoice index]
}

// buildModel constructs the stage-1 MIP for one company, mirroring the
// reference CP-SAT model's variables and constraints (model/batching/solver.py)
// linearized for a MIP solver: every CP-SAT OnlyEnforceIf reification below
// becomes a big-M or bounded-sum pair of linear constraints.
func buildModel(stats []courseStats, shiftOf traineeShiftFunc, enableTrainerConcurrencyLimit bool) (mip.Model, []courseVars) {
	m := mip.NewModel()
	m.Objective().SetMinimize()

	globalMakespan := m.NewInt(0, weekCount)

	courses := make([]courseVars, 0, len(stats))
	for _, cs := range stats {
		cv := newCourseVars(m, cs)
		courses = append(courses, cv)
		addCourseConstraints(m, cv, globalMakespan, shiftOf, enableTrainerConcurrencyLimit)
	}

	obj := m.Objective()
	obj.NewTerm(weightMakespan, globalMakespan)
	for _, cv := range courses {
		for _, bu := range cv.batchUsed {
			obj.NewTerm(weightBatchCount, bu)
		}
		obj.NewTerm(weightSizeImbalance, cv.maxSize)
		obj.NewTerm(-weightSizeImbalance, cv.minSize)
		for _, weekRow := range cv.feasible {
			for _, f := range weekRow {
				obj.NewTerm(-weightFlexibility, f)
			}
		}
	}

	return m, courses
}

func newCourseVars(m mip.Model, cs courseStats) courseVars {
	nb := cs.maxBatches()
	cv := courseVars{
		stats:     cs,
		makespan:  m.NewInt(0, weekCount),
		minSize:   m.NewInt(0, len(cs.trainees)),
		maxSize:   m.NewInt(0, len(cs.trainees)),
		batchUsed: make([]mip.Bool, nb),
		size:      make([]mip.Int, nb),
		x:         make(map[string][]mip.Bool, len(cs.trainees)),
		run:       make([][]mip.Bool, nb),
		feasible:  make([][]mip.Bool, nb),
		z:         make([][][]mip.Bool, nb),
	}
	for _, trainee := range cs.trainees {
		cv.x[trainee] = make([]mip.Bool, nb)
	}
	for b := 0; b < nb; b++ {
		cv.batchUsed[b] = m.NewBool()
		cv.size[b] = m.NewInt(0, cs.maxVenueCapacity)
		for _, trainee := range cs.trainees {
			cv.x[trainee][b] = m.NewBool()
		}
		cv.run[b] = make([]mip.Bool, weekCount)
		cv.feasible[b] = make([]mip.Bool, weekCount)
		cv.z[b] = make([][]mip.Bool, weekCount)
		for w := 0; w < weekCount; w++ {
			cv.run[b][w] = m.NewBool()
			cv.feasible[b][w] = m.NewBool()
			cv.z[b][w] = make([]mip.Bool, len(shiftChoices))
			for s := range shiftChoices {
				cv.z[b][w][s] = m.NewBool()
			}
		}
	}
	return cv
}

func addCourseConstraints(m mip.Model, cv courseVars, globalMakespan mip.Int, shiftOf traineeShiftFunc, enableTrainerConcurrencyLimit bool) {
	capacity := cv.stats.maxVenueCapacity

	// Every enrolled trainee lands in exactly one batch.
	for _, trainee := range cv.stats.trainees {
		c := m.NewConstraint(mip.Equal, 1)
		for _, bv := range cv.x[trainee] {
			c.NewTerm(1, bv)
		}
	}

	for b := range cv.batchUsed {
		sizeDef := m.NewConstraint(mip.Equal, 0)
		sizeDef.NewTerm(1, cv.size[b])
		for _, trainee := range cv.stats.trainees {
			sizeDef.NewTerm(-1, cv.x[trainee][b])
		}

		capCon := m.NewConstraint(mip.LessThanOrEqual, float64(capacity))
		capCon.NewTerm(1, cv.size[b])

		for _, trainee := range cv.stats.trainees {
			link := m.NewConstraint(mip.LessThanOrEqual, 0)
			link.NewTerm(1, cv.x[trainee][b])
			link.NewTerm(-1, cv.batchUsed[b])
		}

		// A used batch runs on exactly one week.
		runDef := m.NewConstraint(mip.Equal, 0)
		for w := 0; w < weekCount; w++ {
			runDef.NewTerm(1, cv.run[b][w])
		}
		runDef.NewTerm(-1, cv.batchUsed[b])

		// min_size <= size <= max_size, only while the batch is used
		// (big-M reification with M = capacity).
		minCon := m.NewConstraint(mip.LessThanOrEqual, float64(capacity))
		minCon.NewTerm(1, cv.minSize)
		minCon.NewTerm(-1, cv.size[b])
		minCon.NewTerm(float64(capacity), cv.batchUsed[b])

		maxCon := m.NewConstraint(mip.LessThanOrEqual, float64(capacity))
		maxCon.NewTerm(1, cv.size[b])
		maxCon.NewTerm(-1, cv.maxSize)
		maxCon.NewTerm(float64(capacity), cv.batchUsed[b])

		for w := 0; w < weekCount; w++ {
			atMostOneShift := m.NewConstraint(mip.LessThanOrEqual, 1)
			for s := range shiftChoices {
				atMostOneShift.NewTerm(1, cv.z[b][w][s])
			}

			runNeedsFeasible := m.NewConstraint(mip.LessThanOrEqual, 0)
			runNeedsFeasible.NewTerm(1, cv.run[b][w])
			runNeedsFeasible.NewTerm(-1, cv.feasible[b][w])

			// exactly one shift chosen once feasible, paired with the
			// <=1 constraint above via a single >= direction.
			exactlyOneIfFeasible := m.NewConstraint(mip.GreaterThanOrEqual, 0)
			for s := range shiftChoices {
				exactlyOneIfFeasible.NewTerm(1, cv.z[b][w][s])
			}
			exactlyOneIfFeasible.NewTerm(-1, cv.feasible[b][w])

			for _, trainee := range cv.stats.trainees {
				realized := shiftOf(trainee, w)
				xtb := cv.x[trainee][b]

				if realized == model.ShiftUnavailable {
					// feasible == 0 whenever an unavailable trainee is in
					// this batch: feasible + x <= 1.
					c := m.NewConstraint(mip.LessThanOrEqual, 1)
					c.NewTerm(1, cv.feasible[b][w])
					c.NewTerm(1, xtb)
					continue
				}

				shiftIdx := shiftChoiceIndex(realized)
				if shiftIdx < 0 {
					continue
				}
				// x <= z[shiftIdx], only while feasible: x - z + feasible <= 1.
				c := m.NewConstraint(mip.LessThanOrEqual, 1)
				c.NewTerm(1, xtb)
				c.NewTerm(-1, cv.z[b][w][shiftIdx])
				c.NewTerm(1, cv.feasible[b][w])
			}
		}

		for w := 0; w < weekCount; w++ {
			makespanCon := m.NewConstraint(mip.GreaterThanOrEqual, 0)
			makespanCon.NewTerm(1, cv.makespan)
			makespanCon.NewTerm(-float64(w+1), cv.run[b][w])
		}
	}

	if enableTrainerConcurrencyLimit {
		for w := 0; w < weekCount; w++ {
			c := m.NewConstraint(mip.LessThanOrEqual, float64(cv.stats.countTrainers))
			for b := range cv.batchUsed {
				c.NewTerm(1, cv.run[b][w])
			}
		}
	}

	globalCon := m.NewConstraint(mip.GreaterThanOrEqual, 0)
	globalCon.NewTerm(1, globalMakespan)
	globalCon.NewTerm(-1, cv.makespan)
}

func shiftChoiceIndex(s model.Shift) int {
	for i, sh := range shiftChoices {
		if sh == s {
			return i
		}
	}
	return -1
}
