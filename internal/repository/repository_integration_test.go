//go:build integration

package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fadilmartias/submission-admin/internal/model"
	"github.com/fadilmartias/submission-admin/internal/repository"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB connects to TEST_DATABASE_DSN, migrates and empties the tables.
// Run with: go test -tags integration ./internal/repository/...
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Submission{},
		&model.WorkExperience{},
		&model.Education{},
		&model.Degree{},
		&model.Skill{},
		&model.SubmissionFilter{},
	))
	require.NoError(t, db.Exec("TRUNCATE submissions, submission_filters RESTART IDENTITY CASCADE").Error)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestSubmissionRepository_ListOrderAndPreload(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewSubmissionRepository(db)
	ctx := context.Background()

	day := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	batch := uuid.New()
	subs := []model.Submission{
		{
			Name: "older", Email: "N/A", Phone: "N/A", Location: "Austin",
			SubmittedAt:             day.Add(-time.Hour),
			WorkAvailability:        pq.StringArray{"Remote"},
			AnnualSalaryExpectation: datatypes.JSON(`{"part-time": "40000", "full-time": "90000"}`),
			ImportBatchID:           batch,
		},
		{
			Name: "tie a", Email: "N/A", Phone: "N/A", Location: "Boston",
			SubmittedAt:             day,
			AnnualSalaryExpectation: datatypes.JSON(`{}`),
			ImportBatchID:           batch,
			WorkExperiences: []model.WorkExperience{
				{Company: "Acme", RoleName: "Engineer"},
				{Company: "Globex", RoleName: "Lead"},
			},
			Education: &model.Education{
				HighestLevel: "Master's Degree",
				Degrees: []model.Degree{
					{Degree: "MSc", Subject: "CS", School: "MIT", GPA: "N/A", StartDate: "N/A", EndDate: "N/A", OriginalSchool: "N/A", IsTop25: true},
				},
			},
			Skills: []model.Skill{{Name: "Go"}, {Name: "SQL"}},
		},
		{
			Name: "tie b", Email: "N/A", Phone: "N/A", Location: "Boston",
			SubmittedAt:             day,
			AnnualSalaryExpectation: datatypes.JSON(`{}`),
			ImportBatchID:           batch,
		},
	}
	require.NoError(t, repo.CreateBatch(ctx, subs))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"tie b", "tie a", "older"}, []string{got[0].Name, got[1].Name, got[2].Name})

	withChildren := got[1]
	require.Len(t, withChildren.WorkExperiences, 2)
	assert.Equal(t, "Acme", withChildren.WorkExperiences[0].Company)
	require.NotNil(t, withChildren.Education)
	require.Len(t, withChildren.Education.Degrees, 1)
	assert.True(t, withChildren.Education.Degrees[0].IsTop25)
	assert.Equal(t, []string{"Go", "SQL"}, []string{withChildren.Skills[0].Name, withChildren.Skills[1].Name})

	assert.Nil(t, got[0].Education)
	assert.Equal(t, []string{"Remote"}, []string(got[2].WorkAvailability))
	assert.Equal(t, `{"part-time": "40000", "full-time": "90000"}`, string(got[2].AnnualSalaryExpectation), "json column keeps key order")
}

func TestFilterRepository_CRUD(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewFilterRepository(db)
	ctx := context.Background()

	loc := "Austin"
	f := &model.SubmissionFilter{Name: "austin", Location: &loc, Skills: pq.StringArray{"Go"}}
	require.NoError(t, repo.Create(ctx, f))
	require.NotZero(t, f.ID)

	f.Location = nil
	f.Name = "anywhere"
	require.NoError(t, repo.Update(ctx, f))

	got, err := repo.FindByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "anywhere", got.Name)
	assert.Nil(t, got.Location)
	assert.Equal(t, []string{"Go"}, []string(got.Skills))

	require.NoError(t, repo.Delete(ctx, f.ID))
	_, err = repo.FindByID(ctx, f.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, f.ID), repository.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &model.SubmissionFilter{ID: 999, Name: "x"}), repository.ErrNotFound)
}
