package repository

import (
	"context"
	"fmt"
)

// MasterEmployee is one row of the master_employee table: a trainee and its
// base shift/cycle/weekly-rotation facts (§6).
type MasterEmployee struct {
	ID         uint    `gorm:"primaryKey"`
	Company    string  `gorm:"column:company;index"`
	EmployeeID string  `gorm:"column:employee_id"`
	Shift      string  `gorm:"column:shift"`
	Cycle      string  `gorm:"column:cycle"`
	Week1Shift *string `gorm:"column:week1_shift"`
	Week2Shift *string `gorm:"column:week2_shift"`
	Week3Shift *string `gorm:"column:week3_shift"`
	Week4Shift *string `gorm:"column:week4_shift"`
}

func (MasterEmployee) TableName() string { return "master_employee" }

// MasterCourseTrainee is one row of the master_course_trainee enrollment
// table. CourseExist mirrors the source's truthy enrollment-validity column
// (§6); rows where it is false are excluded at the SQL layer.
type MasterCourseTrainee struct {
	ID          uint   `gorm:"primaryKey"`
	Company     string `gorm:"column:company;index"`
	EmployeeID  string `gorm:"column:employee_id"`
	CourseName  string `gorm:"column:course_name"`
	CourseExist bool   `gorm:"column:course_exist"`
}

func (MasterCourseTrainee) TableName() string { return "master_course_trainee" }

// EmployeeRepository reads the master employee and enrollment tables.
type EmployeeRepository struct {
	db *DB
}

// NewEmployeeRepository creates a new employee repository.
func NewEmployeeRepository(db *DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// ListByCompany returns every employee row for company, deduplicated at the
// SQL layer is not attempted here — duplicate-by-ID resolution is an
// ingestion concern (§6: "duplicates ... keep first").
func (r *EmployeeRepository) ListByCompany(ctx context.Context, company string) ([]MasterEmployee, error) {
	var rows []MasterEmployee
	err := r.db.GORM.WithContext(ctx).
		Where("company = ?", company).
		Order("employee_id ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list employees for company %q: %w", company, err)
	}
	return rows, nil
}

// ListCompanies returns every distinct company present in master_employee,
// used when §6's companies whitelist is left empty (run every company found).
func (r *EmployeeRepository) ListCompanies(ctx context.Context) ([]string, error) {
	var companies []string
	err := r.db.GORM.WithContext(ctx).
		Model(&MasterEmployee{}).
		Distinct("company").
		Order("company ASC").
		Pluck("company", &companies).Error
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

// ListEnrollment returns every enrollment row for company with a truthy
// course_exist flag.
func (r *EmployeeRepository) ListEnrollment(ctx context.Context, company string) ([]MasterCourseTrainee, error) {
	var rows []MasterCourseTrainee
	err := r.db.GORM.WithContext(ctx).
		Where("company = ? AND course_exist = ?", company, true).
		Order("employee_id ASC, course_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list enrollment for company %q: %w", company, err)
	}
	return rows, nil
}
