package orchestrator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eva-zuliya/timetable-scheduling/internal/config"
	"github.com/eva-zuliya/timetable-scheduling/internal/ingest"
	"github.com/eva-zuliya/timetable-scheduling/internal/model"
)

type fakeIngestor struct {
	companies       []string
	companiesErr    error
	data            []*ingest.CompanyData
	loadErr         error
	loadedCompanies []string
}

func (f *fakeIngestor) ListCompanies(ctx context.Context) ([]string, error) {
	return f.companies, f.companiesErr
}

func (f *fakeIngestor) LoadCompanies(ctx context.Context, companies []string, streamWhitelist []string, minimumCourseParticipant, defaultCourseDuration, hoursPerDay int) ([]*ingest.CompanyData, error) {
	f.loadedCompanies = companies
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.data, nil
}

func baseConfig(t *testing.T) *config.Config {
	t.Helper()
	start, err := time.Parse("2006-01-02", "2026-07-27")
	require.NoError(t, err)
	return &config.Config{
		StartDate:                start,
		Days:                     5,
		HoursPerDay:              8,
		IsSplittingBatch:         false,
		IsSchedulingCourse:       false,
		MaximumGroupSize:         30,
		MinimumCourseParticipant: 1,
		DefaultCourseDuration:    4,
	}
}

func TestRun_DiscoversCompaniesWhenWhitelistEmpty(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Companies = nil

	fi := &fakeIngestor{
		companies: []string{"ACME"},
		data: []*ingest.CompanyData{{
			Company:  "ACME",
			Venues:   []model.Venue{{Company: "ACME", Name: "Room A", Capacity: 20}},
			Trainers: []model.Trainer{model.NewCompanyTrainer("ACME", "T1", "Welding")},
			Courses:  []model.Course{{Company: "ACME", Name: "Welding", DurationHours: 4}},
			Trainees: []model.Trainee{{Company: "ACME", ID: "E1", Courses: []string{"Welding"}}},
		}},
	}

	report, err := Run(context.Background(), cfg, fi)
	require.NoError(t, err)
	assert.Equal(t, []string{"ACME"}, fi.loadedCompanies)
	assert.Contains(t, report.Trainees, "E1")
	assert.Contains(t, report.Venues, "Room A")
	assert.Nil(t, report.SchedulingResult)
	assert.Empty(t, report.BatchingResults)
}

func TestRun_HonorsExplicitCompanyWhitelist(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Companies = []string{"ACME", "GLOBEX"}

	fi := &fakeIngestor{data: []*ingest.CompanyData{}}

	_, err := Run(context.Background(), cfg, fi)
	require.Error(t, err) // no usable data
	assert.Equal(t, []string{"ACME", "GLOBEX"}, fi.loadedCompanies)
}

func TestRun_PropagatesCompanyDiscoveryError(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Companies = nil

	fi := &fakeIngestor{companiesErr: errors.New("db down")}

	_, err := Run(context.Background(), cfg, fi)
	assert.Error(t, err)
}

func TestRun_ErrorsWhenNoCompanyHasUsableData(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Companies = []string{"ACME"}

	fi := &fakeIngestor{data: nil}

	_, err := Run(context.Background(), cfg, fi)
	assert.Error(t, err)
}
