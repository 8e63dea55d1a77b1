package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erickazee/jobtrack/internal/apperrors"
	"github.com/erickazee/jobtrack/internal/models"
)

func masterCount(t *testing.T, svc *ResumeService, userID string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, svc.DB.Model(&models.ResumeVersion{}).
		Where("user_id = ? AND label = ?", userID, models.MasterLabel).
		Count(&count).Error)
	return count
}

func TestSaveMaster_TwiceYieldsOneRow(t *testing.T) {
	svc := NewResumeService(newTestDB(t))
	ctx := context.Background()

	first, err := svc.SaveMaster(ctx, testUser, "# v1", "letter v1")
	require.NoError(t, err)

	second, err := svc.SaveMaster(ctx, testUser, "# v2", "letter v2")
	require.NoError(t, err)

	// Same row, replaced content, never a second Master.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(1), masterCount(t, svc, testUser))

	got, err := svc.GetMaster(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, "# v2", got.ResumeMD)
	assert.Equal(t, "letter v2", got.CoverLetterMD)
}

func TestSaveMaster_EmptyCoverLetterOverwrites(t *testing.T) {
	svc := NewResumeService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.SaveMaster(ctx, testUser, "# v1", "letter v1")
	require.NoError(t, err)
	_, err = svc.SaveMaster(ctx, testUser, "# v2", "")
	require.NoError(t, err)

	got, err := svc.GetMaster(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, got.CoverLetterMD)
}

func TestSaveMaster_PerUser(t *testing.T) {
	svc := NewResumeService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.SaveMaster(ctx, "user-a", "# a", "")
	require.NoError(t, err)
	_, err = svc.SaveMaster(ctx, "user-b", "# b", "")
	require.NoError(t, err)

	assert.Equal(t, int64(1), masterCount(t, svc, "user-a"))
	assert.Equal(t, int64(1), masterCount(t, svc, "user-b"))

	got, err := svc.GetMaster(ctx, "user-b")
	require.NoError(t, err)
	assert.Equal(t, "# b", got.ResumeMD)
}

func TestGetMaster_Absent(t *testing.T) {
	svc := NewResumeService(newTestDB(t))

	_, err := svc.GetMaster(context.Background(), testUser)

	var notFoundErr *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Contains(t, notFoundErr.Message, "Master resume not found")
}

func TestCreateTailored_AllowsDuplicateLabels(t *testing.T) {
	svc := NewResumeService(newTestDB(t))
	ctx := context.Background()
	jobID := "job-1"

	for i := 0; i < 2; i++ {
		version := &models.ResumeVersion{
			UserID:   testUser,
			JobID:    &jobID,
			Label:    "Tailored: Acme - Engineer",
			ResumeMD: "# Tailored",
		}
		require.NoError(t, svc.CreateTailored(ctx, version))
	}

	versions, err := svc.List(ctx, testUser, jobID)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.NotEqual(t, versions[0].ID, versions[1].ID)
	assert.Equal(t, versions[0].Label, versions[1].Label)
}

func TestList_NewestFirstWithJobFilter(t *testing.T) {
	svc := NewResumeService(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	jobID := "job-1"
	rows := []*models.ResumeVersion{
		{UserID: testUser, Label: models.MasterLabel, ResumeMD: "# m", CreatedAt: base},
		{UserID: testUser, JobID: &jobID, Label: "Tailored: Acme - Engineer", CreatedAt: base.Add(time.Hour)},
		{UserID: testUser, JobID: &jobID, Label: "Tailored: Acme - Engineer", CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, row := range rows {
		require.NoError(t, svc.DB.Create(row).Error)
	}

	all, err := svc.List(ctx, testUser, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, rows[2].ID, all[0].ID)
	assert.Equal(t, rows[0].ID, all[2].ID)

	tailored, err := svc.List(ctx, testUser, jobID)
	require.NoError(t, err)
	require.Len(t, tailored, 2)
	assert.Equal(t, rows[2].ID, tailored[0].ID)
}

func TestGet_ScopedToOwner(t *testing.T) {
	svc := NewResumeService(newTestDB(t))
	ctx := context.Background()

	version := &models.ResumeVersion{UserID: testUser, Label: models.MasterLabel, ResumeMD: "# m"}
	require.NoError(t, svc.DB.Create(version).Error)

	got, err := svc.Get(ctx, testUser, version.ID)
	require.NoError(t, err)
	assert.Equal(t, version.ID, got.ID)

	_, err = svc.Get(ctx, "someone-else", version.ID)
	var notFoundErr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}
