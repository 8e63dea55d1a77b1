package services

import (
	"context"
	"encoding/json"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/erickazee/jobtrack/internal/apperrors"
	"github.com/erickazee/jobtrack/internal/models"
)

// EventService appends to and reads the per-job audit trail.
type EventService struct {
	DB *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{DB: db}
}

// Log appends an event, best-effort. Failures go to the server log and are
// never propagated: an event write must not abort the action it records.
func (s *EventService) Log(ctx context.Context, jobID, userID, eventType string, payload map[string]any) {
	if _, err := s.Record(ctx, jobID, userID, eventType, payload); err != nil {
		log.Printf("Error logging event %q for job %s: %v", eventType, jobID, err)
	}
}

// Record appends an event and reports the outcome. Used directly by the
// manual event endpoint, where the append is the primary action.
func (s *EventService) Record(ctx context.Context, jobID, userID, eventType string, payload map[string]any) (*models.ApplicationEvent, error) {
	event := &models.ApplicationEvent{
		JobID:  jobID,
		UserID: userID,
		Type:   eventType,
	}

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, apperrors.DataAccess("failed to encode event payload", err)
		}
		event.Payload = datatypes.JSON(raw)
	}

	if err := s.DB.WithContext(ctx).Create(event).Error; err != nil {
		return nil, apperrors.DataAccess("failed to log event", err)
	}
	return event, nil
}

// Events returns a job's audit trail, newest first.
func (s *EventService) Events(ctx context.Context, userID, jobID string) ([]models.ApplicationEvent, error) {
	var events []models.ApplicationEvent
	err := s.DB.WithContext(ctx).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Order("created_at DESC").
		Find(&events).Error
	if err != nil {
		return nil, apperrors.DataAccess("failed to load events", err)
	}
	return events, nil
}
