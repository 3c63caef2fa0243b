package repository

import (
	"context"
	"fmt"
)

// MasterCourse is one row of the master_course table.
type MasterCourse struct {
	ID              uint    `gorm:"primaryKey"`
	Company         string  `gorm:"column:company;index"`
	CourseName      string  `gorm:"column:course_name"`
	Stream          string  `gorm:"column:stream"`
	DurationMinutes int     `gorm:"column:duration_minutes"`
	ValidStartDate  *string `gorm:"column:valid_start_date"`
	ValidEndDate    *string `gorm:"column:valid_end_date"`
}

func (MasterCourse) TableName() string { return "master_course" }

// MasterCourseSequence is one row of the master_course_sequence table: a
// course's prerequisite edge, optionally also marked as part of the
// company-wide global sequence (§9).
type MasterCourseSequence struct {
	ID                     uint   `gorm:"primaryKey"`
	Company                string `gorm:"column:company;index"`
	CourseName             string `gorm:"column:course_name"`
	PrerequisiteCourseName string `gorm:"column:prerequisite_course_name"`
	IsGlobalSequence       bool   `gorm:"column:is_global_sequence"`
}

func (MasterCourseSequence) TableName() string { return "master_course_sequence" }

// CourseRepository reads the master course and course-sequence tables.
type CourseRepository struct {
	db *DB
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// ListByCompany returns every course row belonging to company.
func (r *CourseRepository) ListByCompany(ctx context.Context, company string) ([]MasterCourse, error) {
	var rows []MasterCourse
	err := r.db.GORM.WithContext(ctx).
		Where("company = ?", company).
		Order("course_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list courses for company %q: %w", company, err)
	}
	return rows, nil
}

// ListSequence returns every prerequisite edge for company, already filtered
// to rows with a non-blank prerequisite course name the way the reference
// ingestion filters its sequence frame.
func (r *CourseRepository) ListSequence(ctx context.Context, company string) ([]MasterCourseSequence, error) {
	var rows []MasterCourseSequence
	err := r.db.GORM.WithContext(ctx).
		Where("company = ? AND TRIM(prerequisite_course_name) <> ''", company).
		Order("course_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list course sequence for company %q: %w", company, err)
	}
	return rows, nil
}
