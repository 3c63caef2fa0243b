package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eva-zuliya/timetable-scheduling/internal/repository"
	"github.com/eva-zuliya/timetable-scheduling/internal/testutil"
)

func TestEmployeeRepository_ListEnrollment_ExcludesNonExistentCourseFlag(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewEmployeeRepository(db)
	ctx := context.Background()

	employees := []repository.MasterEmployee{
		{Company: "ACME", EmployeeID: "E1", Shift: "Non Shift", Cycle: "WDays"},
		{Company: "ACME", EmployeeID: "E2", Shift: "Shift 1", Cycle: "WEnd"},
	}
	require.NoError(t, db.GORM.Create(&employees).Error)

	enrollment := []repository.MasterCourseTrainee{
		{Company: "ACME", EmployeeID: "E1", CourseName: "Welding", CourseExist: true},
		{Company: "ACME", EmployeeID: "E2", CourseName: "Welding", CourseExist: false},
	}
	require.NoError(t, db.GORM.Create(&enrollment).Error)

	emps, err := repo.ListByCompany(ctx, "ACME")
	require.NoError(t, err)
	assert.Len(t, emps, 2)

	enrolled, err := repo.ListEnrollment(ctx, "ACME")
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.Equal(t, "E1", enrolled[0].EmployeeID)
}
