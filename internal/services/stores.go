package services

import (
	"context"

	"github.com/erickazee/jobtrack/internal/models"
)

// Narrow store interfaces consumed by the workflow-level services. The
// gorm-backed services below satisfy them; tests substitute fakes.

type JobReader interface {
	Get(ctx context.Context, userID, jobID string) (*models.JobApplication, error)
}

type ResumeStore interface {
	GetMaster(ctx context.Context, userID string) (*models.ResumeVersion, error)
	Get(ctx context.Context, userID, id string) (*models.ResumeVersion, error)
	CreateTailored(ctx context.Context, version *models.ResumeVersion) error
}

// EventRecorder appends audit events. Log is best-effort: implementations
// swallow failures so an event write can never abort the action it records.
type EventRecorder interface {
	Log(ctx context.Context, jobID, userID, eventType string, payload map[string]any)
}

// TextGenerator is the single outbound call to the text-generation API.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
