package model

// Trainer can teach any course-batch in EligibleCourses.
type Trainer struct {
	Company         string
	ID              string
	EligibleCourses map[string]struct{}
}

// NewTrainer builds a Trainer with a pre-sized eligibility set.
func NewTrainer(id string, eligible ...string) Trainer {
	t := Trainer{ID: id, EligibleCourses: make(map[string]struct{}, len(eligible))}
	for _, c := range eligible {
		t.EligibleCourses[c] = struct{}{}
	}
	return t
}

// NewCompanyTrainer is NewTrainer plus the owning company, used once stage 2
// starts mixing multiple companies' data into a single solve (§5).
func NewCompanyTrainer(company, id string, eligible ...string) Trainer {
	t := NewTrainer(id, eligible...)
	t.Company = company
	return t
}

// CanTeach reports whether the trainer is eligible for courseOrBatchID.
func (t Trainer) CanTeach(courseOrBatchID string) bool {
	_, ok := t.EligibleCourses[courseOrBatchID]
	return ok
}
