package model

import "fmt"

// BatchAssignment is the sole stage-1 output / stage-2 input record: one row
// per (company, course, batch_no, trainee_id).
type BatchAssignment struct {
	Company    string
	Course     string
	BatchNo    int
	TraineeID  string
	WeekShifts [4]Shift // week1..week4, each in {0,1,2,3}
}

// BatchID is the CourseBatch identity this assignment belongs to.
func (b BatchAssignment) BatchID() string {
	return fmt.Sprintf("%s-%s-%d", b.Company, b.Course, b.BatchNo)
}

// BatchWeek records the single week+shift a used batch runs on. It is a
// batch-level fact derived from all of that batch's assignment rows, not
// from any one trainee's row in isolation.
type BatchWeek struct {
	BatchID string
	Company string
	Course  string
	BatchNo int
	Week    int   // 1..4
	Shift   Shift // the shift realized on Week
}
