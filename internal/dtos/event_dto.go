package dtos

// EventRequest records a manual workflow fact against a job, e.g.
// "submitted", "interview_scheduled", "application_viewed".
type EventRequest struct {
	Type    string         `json:"type" binding:"required"`
	Payload map[string]any `json:"payload"`
}
