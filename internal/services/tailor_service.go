package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/erickazee/jobtrack/internal/apperrors"
	"github.com/erickazee/jobtrack/internal/models"
)

// Event types written by the AI workflow. The type column is an open string
// tag; these are just the ones this service emits.
const (
	EventTailored = "tailored"
	EventPrepared = "prepared_for_submission"
)

const tailorPromptTemplate = `You are a professional resume expert. Using the MASTER RESUME and JOB DESCRIPTION below, create a tailored resume and cover letter that highlights the most relevant experience and skills for this specific position.

JOB DETAILS:
Company: %s
Role: %s
Location: %s
Description: %s

MASTER RESUME:
%s

INSTRUCTIONS:
1. Tailor the resume to emphasize experience and skills most relevant to this job
2. Use keywords from the job description naturally throughout the resume
3. Maintain professional formatting and structure
4. Create a compelling cover letter that shows genuine interest in this specific role
5. Keep the same contact information and overall career timeline
6. Focus on achievements and quantifiable results where possible

Return your response as a JSON object with these exact keys:
{
  "tailored_resume": "The complete tailored resume in markdown format",
  "cover_letter": "A personalized cover letter for this specific job"
}`

// TailorService runs one tailoring pass: load job + master resume, one
// text-generation call, persist the new version, log the event.
type TailorService struct {
	Jobs    JobReader
	Resumes ResumeStore
	Events  EventRecorder
	LLM     TextGenerator
}

func NewTailorService(jobs JobReader, resumes ResumeStore, events EventRecorder, llm TextGenerator) *TailorService {
	return &TailorService{
		Jobs:    jobs,
		Resumes: resumes,
		Events:  events,
		LLM:     llm,
	}
}

// TailoredVersion identifies the version a successful run produced.
type TailoredVersion struct {
	ID    string `json:"resume_version_id"`
	Label string `json:"label"`
}

// Tailor generates a resume/cover-letter pair for one job. The version row
// and the "tailored" event are written in order; if the event write fails
// after the version write succeeded, the version stays. No rollback.
func (s *TailorService) Tailor(ctx context.Context, userID, jobID string) (*TailoredVersion, error) {
	job, err := s.Jobs.Get(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	master, err := s.Resumes.GetMaster(ctx, userID)
	if err != nil {
		var nf *apperrors.NotFoundError
		if errors.As(err, &nf) {
			// Wrapping keeps the NotFound visible to the HTTP layer, which
			// answers 404 for a missing master like the original did.
			return nil, &apperrors.TailoringError{Message: nf.Message, Err: nf}
		}
		return nil, err
	}

	raw, err := s.LLM.Generate(ctx, buildTailorPrompt(job, master))
	if err != nil {
		return nil, apperrors.Tailoring("Resume tailoring failed", err)
	}

	result := parseTailorResponse(raw)

	version := &models.ResumeVersion{
		UserID:        userID,
		JobID:         &job.ID,
		Label:         fmt.Sprintf("Tailored: %s - %s", job.Company, job.Role),
		ResumeMD:      result.Resume,
		CoverLetterMD: result.CoverLetter,
	}
	if err := s.Resumes.CreateTailored(ctx, version); err != nil {
		return nil, err
	}

	s.Events.Log(ctx, jobID, userID, EventTailored, map[string]any{
		"resume_version_id": version.ID,
	})

	return &TailoredVersion{ID: version.ID, Label: version.Label}, nil
}

func buildTailorPrompt(job *models.JobApplication, master *models.ResumeVersion) string {
	location := job.Location
	if location == "" {
		location = "Not specified"
	}
	description := job.Description
	if description == "" {
		description = "No description provided"
	}
	return fmt.Sprintf(tailorPromptTemplate, job.Company, job.Role, location, description, master.ResumeMD)
}

// tailorResult is the tagged outcome of parsing model output: either the
// expected two-key JSON object, or the raw text kept whole as the resume.
type tailorResult struct {
	Resume      string
	CoverLetter string
	Parsed      bool
}

// Models tend to wrap the requested JSON in prose, so take the trailing
// brace-delimited chunk and try that.
var tailorJSONPattern = regexp.MustCompile(`(?s)\{.*\}$`)

// parseTailorResponse never fails: anything that doesn't decode into the
// expected structure degrades to the whole response as the tailored resume
// with an empty cover letter.
func parseTailorResponse(content string) tailorResult {
	candidate := tailorJSONPattern.FindString(strings.TrimSpace(content))
	if candidate != "" {
		var parsed struct {
			TailoredResume string `json:"tailored_resume"`
			CoverLetter    string `json:"cover_letter"`
		}
		if err := json.Unmarshal([]byte(candidate), &parsed); err == nil && parsed.TailoredResume != "" {
			return tailorResult{
				Resume:      parsed.TailoredResume,
				CoverLetter: parsed.CoverLetter,
				Parsed:      true,
			}
		}
	}
	return tailorResult{Resume: content}
}
