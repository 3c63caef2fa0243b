package repository

import (
	"context"
	"fmt"
)

// MasterVenue is one row of the master_venue table (§6 inputs).
type MasterVenue struct {
	ID        uint   `gorm:"primaryKey"`
	Company   string `gorm:"column:company;index"`
	VenueName string `gorm:"column:venue_name"`
	Capacity  int    `gorm:"column:capacity"`
	IsVirtual bool   `gorm:"column:is_virtual"`
}

// TableName pins the GORM table name to the logical master table (§6), since
// the pluralization convention would otherwise guess "master_venues".
func (MasterVenue) TableName() string { return "master_venue" }

// VenueRepository reads the master venue table.
type VenueRepository struct {
	db *DB
}

// NewVenueRepository creates a new venue repository.
func NewVenueRepository(db *DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// ListByCompany returns every venue row belonging to company, in a stable
// order so downstream batching is deterministic across runs.
func (r *VenueRepository) ListByCompany(ctx context.Context, company string) ([]MasterVenue, error) {
	var rows []MasterVenue
	err := r.db.GORM.WithContext(ctx).
		Where("company = ?", company).
		Order("venue_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list venues for company %q: %w", company, err)
	}
	return rows, nil
}
