package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erickazee/jobtrack/internal/auth"
	"github.com/erickazee/jobtrack/internal/dtos"
	"github.com/erickazee/jobtrack/internal/services"
)

type EventHandler struct {
	Events *services.EventService
	Jobs   *services.JobService
}

func NewEventHandler(events *services.EventService, jobs *services.JobService) *EventHandler {
	return &EventHandler{
		Events: events,
		Jobs:   jobs,
	}
}

// List is GET /jobs/:id/events, newest first.
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.Events.Events(c.Request.Context(), auth.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// Create is POST /jobs/:id/events: the user records a manual workflow fact
// ("submitted", "interview_scheduled", "application_viewed"). Unlike the
// best-effort logging inside the AI workflow, this append IS the primary
// action, so failures surface.
func (h *EventHandler) Create(c *gin.Context) {
	var req dtos.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	userID := auth.UserID(c)
	jobID := c.Param("id")

	// Ownership check: recording against someone else's job looks like a
	// missing job.
	if _, err := h.Jobs.Get(c.Request.Context(), userID, jobID); err != nil {
		respondError(c, err)
		return
	}

	event, err := h.Events.Record(c.Request.Context(), jobID, userID, req.Type, req.Payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}
