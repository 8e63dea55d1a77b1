package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erickazee/jobtrack/internal/apperrors"
	"github.com/erickazee/jobtrack/internal/models"
)

func newWorkflowFixture() (*WorkflowService, *fakeEvents) {
	job := acmeJob()
	job.URL = "https://acme.example/careers/1"

	tailored := &models.ResumeVersion{
		ID:            "version-1",
		UserID:        testUser,
		JobID:         &job.ID,
		Label:         "Tailored: Acme - Engineer",
		ResumeMD:      "# Tailored",
		CoverLetterMD: "Dear Acme team",
	}

	jobs := &fakeJobs{jobs: map[string]*models.JobApplication{"job-1": job}}
	resumes := &fakeResumes{versions: map[string]*models.ResumeVersion{"version-1": tailored}}
	events := &fakeEvents{}
	return NewWorkflowService(jobs, resumes, events), events
}

func TestPrepareApplication_Bundle(t *testing.T) {
	svc, events := newWorkflowFixture()

	bundle, err := svc.PrepareApplication(context.Background(), testUser, "job-1", "version-1")
	require.NoError(t, err)

	assert.Equal(t, "Application: Engineer – Acme (Eric Kazee)", bundle.Subject)
	assert.Equal(t, "Dear Acme team", bundle.Body)
	assert.Equal(t, "# Tailored", bundle.Resume)
	assert.Equal(t, "https://acme.example/careers/1", bundle.JobURL)
	assert.Equal(t, "Acme", bundle.Company)
	assert.Equal(t, "Engineer", bundle.Role)

	require.Len(t, events.logged, 1)
	assert.Equal(t, EventPrepared, events.logged[0].eventType)
	assert.Equal(t, "version-1", events.logged[0].payload["resume_version_id"])
	assert.Equal(t, true, events.logged[0].payload["email_prepared"])
}

func TestPrepareApplication_JobMissing(t *testing.T) {
	svc, events := newWorkflowFixture()

	_, err := svc.PrepareApplication(context.Background(), testUser, "job-nope", "version-1")

	var notFoundErr *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Zero(t, events.attempts)
}

func TestPrepareApplication_ResumeMissing(t *testing.T) {
	svc, events := newWorkflowFixture()

	_, err := svc.PrepareApplication(context.Background(), testUser, "job-1", "version-nope")

	var notFoundErr *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Zero(t, events.attempts)
}

func TestPrepareApplication_EventFailureStillReturnsBundle(t *testing.T) {
	svc, events := newWorkflowFixture()
	events.failing = true

	bundle, err := svc.PrepareApplication(context.Background(), testUser, "job-1", "version-1")
	require.NoError(t, err)
	assert.NotEmpty(t, bundle.Subject)
	assert.Equal(t, 1, events.attempts)
}
