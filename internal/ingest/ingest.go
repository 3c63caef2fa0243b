// Package ingest maps the master tables read through internal/repository
// onto the pure domain model in internal/model, applying the row-level
// tolerance and normalization rules of §6/§7: trim, coerce, dedupe-keep-
// first, drop-and-log on a bad row rather than fail the whole load.
package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/eva-zuliya/timetable-scheduling/internal/model"
	"github.com/eva-zuliya/timetable-scheduling/internal/repository"
)

// CompanyData is everything the batching stage needs for one company.
type CompanyData struct {
	Company  string
	Venues   []model.Venue
	Trainers []model.Trainer
	Courses  []model.Course
	Trainees []model.Trainee
}

// Ingestor reads and normalizes the master tables for a set of companies.
type Ingestor struct {
	venues    *repository.VenueRepository
	trainers  *repository.TrainerRepository
	courses   *repository.CourseRepository
	employees *repository.EmployeeRepository
}

// New builds an Ingestor backed by db.
func New(db *repository.DB) *Ingestor {
	return &Ingestor{
		venues:    repository.NewVenueRepository(db),
		trainers:  repository.NewTrainerRepository(db),
		courses:   repository.NewCourseRepository(db),
		employees: repository.NewEmployeeRepository(db),
	}
}

// ListCompanies discovers every company present in the master employee
// table, used when the configured companies whitelist (§6) is empty.
func (in *Ingestor) ListCompanies(ctx context.Context) ([]string, error) {
	return in.employees.ListCompanies(ctx)
}

// LoadCompany reads and normalizes all master tables for one company.
func (in *Ingestor) LoadCompany(ctx context.Context, company string, streamWhitelist []string, minimumCourseParticipant, defaultCourseDuration, hoursPerDay int) (*CompanyData, error) {
	venues, err := in.loadVenues(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("load venues for company %q: %w", company, err)
	}
	trainers, err := in.loadTrainers(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("load trainers for company %q: %w", company, err)
	}
	courses, err := in.loadCourses(ctx, company, streamWhitelist, defaultCourseDuration, hoursPerDay)
	if err != nil {
		return nil, fmt.Errorf("load courses for company %q: %w", company, err)
	}
	trainees, err := in.loadTrainees(ctx, company, minimumCourseParticipant)
	if err != nil {
		return nil, fmt.Errorf("load trainees for company %q: %w", company, err)
	}

	if len(venues) == 0 || len(trainers) == 0 || len(courses) == 0 || len(trainees) == 0 {
		log.Warn().Str("company", company).
			Int("venues", len(venues)).Int("trainers", len(trainers)).
			Int("courses", len(courses)).Int("trainees", len(trainees)).
			Msg("ingest: company has no usable data in one or more master tables")
		return nil, fmt.Errorf("%w: %s", ErrNoCompanyData, company)
	}

	log.Info().Str("company", company).
		Int("venues", len(venues)).Int("trainers", len(trainers)).
		Int("courses", len(courses)).Int("trainees", len(trainees)).
		Msg("ingest: loaded company data")

	return &CompanyData{
		Company:  company,
		Venues:   venues,
		Trainers: trainers,
		Courses:  courses,
		Trainees: trainees,
	}, nil
}

// LoadCompanies loads every company in companies, skipping (with a logged
// warning, not a hard failure) any company for which LoadCompany reports
// ErrNoCompanyData, i.e. one or more of its master tables has no usable row.
func (in *Ingestor) LoadCompanies(ctx context.Context, companies []string, streamWhitelist []string, minimumCourseParticipant, defaultCourseDuration, hoursPerDay int) ([]*CompanyData, error) {
	out := make([]*CompanyData, 0, len(companies))
	for _, company := range companies {
		data, err := in.LoadCompany(ctx, company, streamWhitelist, minimumCourseParticipant, defaultCourseDuration, hoursPerDay)
		if err != nil {
			if errors.Is(err, ErrNoCompanyData) {
				continue
			}
			return nil, err
		}
		out = append(out, data)
	}
	return out, nil
}
