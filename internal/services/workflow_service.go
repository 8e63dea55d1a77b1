package services

import (
	"context"
	"fmt"

	"github.com/erickazee/jobtrack/internal/dtos"
)

// Subject line for the staged application email. The tracker is a personal
// tool; the applicant name is part of its contract.
const applicationSubjectFormat = "Application: %s – %s (Eric Kazee)"

// WorkflowService stages an application for manual submission: it composes
// the email-shaped bundle the user previews and copies. Nothing is sent.
type WorkflowService struct {
	Jobs    JobReader
	Resumes ResumeStore
	Events  EventRecorder
}

func NewWorkflowService(jobs JobReader, resumes ResumeStore, events EventRecorder) *WorkflowService {
	return &WorkflowService{
		Jobs:    jobs,
		Resumes: resumes,
		Events:  events,
	}
}

// PrepareApplication loads the job and the chosen resume version and returns
// the submission bundle. Logs "prepared_for_submission" best-effort.
func (s *WorkflowService) PrepareApplication(ctx context.Context, userID, jobID, resumeVersionID string) (*dtos.ApplicationBundle, error) {
	job, err := s.Jobs.Get(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	resume, err := s.Resumes.Get(ctx, userID, resumeVersionID)
	if err != nil {
		return nil, err
	}

	bundle := &dtos.ApplicationBundle{
		Subject: fmt.Sprintf(applicationSubjectFormat, job.Role, job.Company),
		Body:    resume.CoverLetterMD,
		Resume:  resume.ResumeMD,
		JobURL:  job.URL,
		Company: job.Company,
		Role:    job.Role,
	}

	s.Events.Log(ctx, jobID, userID, EventPrepared, map[string]any{
		"resume_version_id": resumeVersionID,
		"email_prepared":    true,
	})

	return bundle, nil
}
