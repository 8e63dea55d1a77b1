package dtos

import (
	"github.com/erickazee/jobtrack/internal/models"
	"github.com/erickazee/jobtrack/internal/pipeline"
)

// JobRequest covers both create and update of a job application.
type JobRequest struct {
	Company string `json:"company" binding:"required"`
	Role    string `json:"role" binding:"required"`

	// Optional fields
	Location    string `json:"location"`
	Source      string `json:"source"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Status      string `json:"status"` // Defaults to "To Review" if empty
	Excitement  *int   `json:"excitement"`
}

// JobListResponse is returned by every job read AND mutation: each write is
// followed by a full reload so the client always sees store state.
type JobListResponse struct {
	Jobs  []models.JobApplication `json:"jobs"`
	Stats pipeline.Stats          `json:"stats"`
}

// PipelineColumn is one status bucket of the board view, in display order.
type PipelineColumn struct {
	Status string                  `json:"status"`
	Jobs   []models.JobApplication `json:"jobs"`
}

type PipelineResponse struct {
	Columns []PipelineColumn `json:"columns"`
	Stats   pipeline.Stats   `json:"stats"`
}
