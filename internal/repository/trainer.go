package repository

import (
	"context"
	"fmt"
)

// MasterTrainer is one row of the master_trainer table.
type MasterTrainer struct {
	ID          uint   `gorm:"primaryKey"`
	Company     string `gorm:"column:company;index"`
	TrainerID   string `gorm:"column:trainer_id"`
	TrainerName string `gorm:"column:trainer_name"`
}

func (MasterTrainer) TableName() string { return "master_trainer" }

// MasterCourseTrainer is one row of the master_course_trainer eligibility
// table: which trainer may teach which course.
type MasterCourseTrainer struct {
	ID         uint   `gorm:"primaryKey"`
	Company    string `gorm:"column:company;index"`
	TrainerID  string `gorm:"column:trainer_id"`
	CourseName string `gorm:"column:course_name"`
}

func (MasterCourseTrainer) TableName() string { return "master_course_trainer" }

// TrainerRepository reads the master trainer and eligibility tables.
type TrainerRepository struct {
	db *DB
}

// NewTrainerRepository creates a new trainer repository.
func NewTrainerRepository(db *DB) *TrainerRepository {
	return &TrainerRepository{db: db}
}

// ListByCompany returns every trainer row belonging to company.
func (r *TrainerRepository) ListByCompany(ctx context.Context, company string) ([]MasterTrainer, error) {
	var rows []MasterTrainer
	err := r.db.GORM.WithContext(ctx).
		Where("company = ?", company).
		Order("trainer_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list trainers for company %q: %w", company, err)
	}
	return rows, nil
}

// ListEligibility returns every course-trainer eligibility row for company.
func (r *TrainerRepository) ListEligibility(ctx context.Context, company string) ([]MasterCourseTrainer, error) {
	var rows []MasterCourseTrainer
	err := r.db.GORM.WithContext(ctx).
		Where("company = ?", company).
		Order("trainer_id ASC, course_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list course-trainer eligibility for company %q: %w", company, err)
	}
	return rows, nil
}
